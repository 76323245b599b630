package service

import (
	"context"
	"fmt"

	"lingua-progress/internal/domain"
	"lingua-progress/internal/dto"
	"lingua-progress/internal/logger"

	"go.uber.org/zap"
)

// ProgressService records test outcomes and drives level progression.
type ProgressService interface {
	RecordCorrectness(ctx context.Context, progressID int64, isCorrect bool, contentType domain.ContentType) (*dto.UpdateTestResponse, error)
}

// ProgressOption configures optional hardening of the update sequence.
type ProgressOption func(*progressServiceImpl)

// WithTransactions runs update, completion check and level evaluation in one transaction.
func WithTransactions(tm domain.TransactionManager) ProgressOption {
	return func(s *progressServiceImpl) { s.txManager = tm }
}

// WithUserLocker serialises updates of the same user.
func WithUserLocker(locker domain.UserLocker) ProgressOption {
	return func(s *progressServiceImpl) { s.locker = locker }
}

type progressServiceImpl struct {
	testProgressRepo domain.TestProgressRepository
	completion       CompletionService
	levels           LevelService
	txManager        domain.TransactionManager
	locker           domain.UserLocker
}

// NewProgressService creates a new instance of ProgressService.
func NewProgressService(
	testProgressRepo domain.TestProgressRepository,
	completion CompletionService,
	levels LevelService,
	opts ...ProgressOption,
) ProgressService {
	s := &progressServiceImpl{
		testProgressRepo: testProgressRepo,
		completion:       completion,
		levels:           levels,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *progressServiceImpl) RecordCorrectness(ctx context.Context, progressID int64, isCorrect bool, contentType domain.ContentType) (*dto.UpdateTestResponse, error) {
	progress, err := s.testProgressRepo.GetTestProgressByID(ctx, progressID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		return nil, domain.NewTestProgressNotFoundError(progressID)
	}

	if s.locker != nil {
		unlock, err := s.locker.Lock(ctx, progress.UserID)
		if err != nil {
			return nil, err
		}
		defer func() {
			// The request context may already be cancelled here.
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				logger.Get().Warn("Failed to release user lock", zap.Int64("userID", progress.UserID), zap.Error(err))
			}
		}()
	}

	var result *domain.LevelResult
	run := func(ctx context.Context) error {
		var err error
		result, err = s.record(ctx, progress, isCorrect, contentType)
		return err
	}

	if s.txManager != nil {
		err = s.txManager.WithTransaction(ctx, run)
	} else {
		err = run(ctx)
	}
	if err != nil {
		return nil, err
	}

	message := dto.MessageTestUpdated
	if result.LevelUp {
		message = dto.MessageLevelUp
	}
	return &dto.UpdateTestResponse{
		Success:  true,
		LevelUp:  result.LevelUp,
		NewLevel: result.NewLevel,
		Message:  message,
	}, nil
}

// record persists the flag, runs the matching completion check and then
// always evaluates the user's level.
func (s *progressServiceImpl) record(ctx context.Context, progress *domain.TestProgress, isCorrect bool, contentType domain.ContentType) (*domain.LevelResult, error) {
	if err := s.testProgressRepo.UpdateIsCorrect(ctx, progress.ID, isCorrect); err != nil {
		return nil, err
	}
	progress.IsCorrect = isCorrect

	target := domain.ResolveCompletionTarget(progress, contentType)
	switch target.Type {
	case domain.ContentArticle, domain.ContentVideo, domain.ContentAudio:
		if err := s.completion.CheckAndUpdateCompletion(ctx, target.Type, target.ContentID, progress.UserID); err != nil {
			return nil, fmt.Errorf("failed to check %s completion: %w", target.Type, err)
		}
	case domain.ContentNone:
		logger.Get().Debug("No completion check matched",
			zap.Int64("progressID", progress.ID),
			zap.Int("requestedType", int(contentType)),
		)
	}

	return s.levels.EvaluateAndMaybePromote(ctx, progress.UserID)
}
