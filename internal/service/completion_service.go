package service

import (
	"context"
	"fmt"

	"lingua-progress/internal/domain"
	"lingua-progress/internal/logger"

	"go.uber.org/zap"
)

// CompletionService recomputes a user's completion flag for one content item.
type CompletionService interface {
	CheckAndUpdateCompletion(ctx context.Context, t domain.ContentType, contentID, userID int64) error
}

type completionServiceImpl struct {
	testProgressRepo    domain.TestProgressRepository
	contentProgressRepo domain.ContentProgressRepository
}

// NewCompletionService creates a new instance of CompletionService.
func NewCompletionService(testProgressRepo domain.TestProgressRepository, contentProgressRepo domain.ContentProgressRepository) CompletionService {
	return &completionServiceImpl{
		testProgressRepo:    testProgressRepo,
		contentProgressRepo: contentProgressRepo,
	}
}

// CheckAndUpdateCompletion marks the item completed once the user has
// answered at least one of its tests and every one of them correctly.
func (s *completionServiceImpl) CheckAndUpdateCompletion(ctx context.Context, t domain.ContentType, contentID, userID int64) error {
	if !t.Valid() {
		return domain.NewInvalidInputError(fmt.Sprintf("unsupported content type %s", t))
	}

	tests, err := s.testProgressRepo.ListTestProgressForContent(ctx, userID, t, contentID)
	if err != nil {
		return err
	}

	completed := len(tests) > 0
	for _, test := range tests {
		if !test.IsCorrect {
			completed = false
			break
		}
	}

	if err := s.contentProgressRepo.UpsertCompletion(ctx, &domain.ContentProgress{
		UserID:      userID,
		ContentID:   contentID,
		Type:        t,
		IsCompleted: completed,
	}); err != nil {
		return err
	}

	logger.Get().Debug("Content completion checked",
		zap.String("contentType", t.String()),
		zap.Int64("contentID", contentID),
		zap.Int64("userID", userID),
		zap.Int("tests", len(tests)),
		zap.Bool("completed", completed),
	)
	return nil
}
