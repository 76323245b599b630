package database

import (
	"fmt"
	"strings"

	"lingua-progress/internal/logger"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/reflectx"
	_ "github.com/lib/pq"          // Postgres driver
	_ "github.com/sijms/go-ora/v2" // Oracle driver
	"go.uber.org/zap"
)

func init() {
	// go-ora registers as "oracle", which sqlx does not know; it takes :name placeholders.
	sqlx.BindDriver("oracle", sqlx.NAMED)
}

// NewSQLXDB connects to the configured database and verifies the connection.
func NewSQLXDB(driver, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}

	configureMapper(db, driver)

	logger.Get().Info("Successfully connected to database", zap.String("driver", driver))
	return db, nil
}

// configureMapper matches struct tags to the column case the driver reports.
// Oracle folds unquoted identifiers to upper case.
func configureMapper(db *sqlx.DB, driver string) {
	if driver == "oracle" {
		db.Mapper = reflectx.NewMapperTagFunc("db", strings.ToUpper, strings.ToUpper)
	}
}
