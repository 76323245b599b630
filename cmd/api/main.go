// @title Lingua Progress API
// @version 1.0
// @description Records test outcomes of language-learning content and promotes users between levels.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"lingua-progress/internal/adapter"
	"lingua-progress/internal/cache"
	"lingua-progress/internal/config"
	"lingua-progress/internal/database"
	"lingua-progress/internal/handler"
	"lingua-progress/internal/logger"
	"lingua-progress/internal/middleware"
	"lingua-progress/internal/repository"
	"lingua-progress/internal/service"

	_ "lingua-progress/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	userLockWait    = 3 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewSQLXDB(cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	checks := map[string]handler.Pinger{"database": db}

	var redisClient *redis.Client
	if cfg.Redis.Address != "" || cfg.Progress.UserLockEnabled {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
		checks["redis"] = handler.PingerFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}

	// Initialize repositories
	testProgressRepository := repository.NewSQLXTestProgressRepository(db)
	userRepository := repository.NewSQLXUserRepository(db)
	contentRepository := repository.NewSQLXContentRepository(db)
	contentProgressRepository := repository.NewSQLXContentProgressRepository(db)

	// Initialize services
	completionService := service.NewCompletionService(testProgressRepository, contentProgressRepository)
	levelService := service.NewLevelService(userRepository, contentRepository, contentProgressRepository)

	var progressOpts []service.ProgressOption
	if cfg.Progress.Transactional {
		progressOpts = append(progressOpts, service.WithTransactions(repository.NewTransactionManagerAdapter(db)))
		appLogger.Info("Transactional progress updates enabled")
	}
	if cfg.Progress.UserLockEnabled {
		locker := adapter.NewRedisUserLocker(redisClient, cfg.Progress.UserLockTTL, userLockWait)
		progressOpts = append(progressOpts, service.WithUserLocker(locker))
		appLogger.Info("Per-user progress lock enabled", zap.Duration("ttl", cfg.Progress.UserLockTTL))
	}
	progressService := service.NewProgressService(testProgressRepository, completionService, levelService, progressOpts...)

	// Initialize handlers
	progressHandler := handler.NewProgressHandler(progressService)
	healthHandler := handler.NewHealthHandler(checks)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,PUT,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept," + middleware.RequestIDHeader,
		MaxAge:       300,
	}))

	handler.RegisterRoutes(app, progressHandler, healthHandler)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		return app.Listen(":" + strconv.Itoa(cfg.Server.Port))
	})
	g.Go(func() error {
		<-gCtx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Server stopped with error", zap.Error(err))
		return
	}
	appLogger.Info("Server exited gracefully")
}
