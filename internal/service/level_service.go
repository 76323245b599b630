package service

import (
	"context"
	"fmt"

	"lingua-progress/internal/domain"
	"lingua-progress/internal/logger"

	"go.uber.org/zap"
)

// LevelService decides whether a user finished their current level.
type LevelService interface {
	// EvaluateAndMaybePromote promotes the user by one level when every
	// article, video and audio at their current level is completed.
	EvaluateAndMaybePromote(ctx context.Context, userID int64) (*domain.LevelResult, error)
}

type levelServiceImpl struct {
	userRepo            domain.UserRepository
	contentRepo         domain.ContentRepository
	contentProgressRepo domain.ContentProgressRepository
}

// NewLevelService creates a new instance of LevelService.
func NewLevelService(
	userRepo domain.UserRepository,
	contentRepo domain.ContentRepository,
	contentProgressRepo domain.ContentProgressRepository,
) LevelService {
	return &levelServiceImpl{
		userRepo:            userRepo,
		contentRepo:         contentRepo,
		contentProgressRepo: contentProgressRepo,
	}
}

func (s *levelServiceImpl) EvaluateAndMaybePromote(ctx context.Context, userID int64) (*domain.LevelResult, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	if user == nil {
		logger.Get().Debug("Skipping level evaluation for missing user", zap.Int64("userID", userID))
		return &domain.LevelResult{}, nil
	}

	currentLevel := user.Level
	contentByType := make(map[domain.ContentType][]domain.ContentItem, len(domain.ContentTypes))
	total := 0
	for _, t := range domain.ContentTypes {
		items, err := s.contentRepo.GetContentByLevel(ctx, t, currentLevel)
		if err != nil {
			return nil, err
		}
		contentByType[t] = items
		total += len(items)
	}

	// A level without any content never promotes.
	if total == 0 {
		return &domain.LevelResult{}, nil
	}

	allCompleted := true
	for _, t := range domain.ContentTypes {
		completed, err := s.allCompleted(ctx, t, userID, contentByType[t])
		if err != nil {
			return nil, err
		}
		allCompleted = allCompleted && completed
	}

	if !allCompleted {
		return &domain.LevelResult{LevelUp: false, NewLevel: &currentLevel}, nil
	}

	newLevel := currentLevel + 1
	if err := s.userRepo.UpdateUserLevel(ctx, userID, newLevel); err != nil {
		return nil, fmt.Errorf("failed to promote user %d: %w", userID, err)
	}

	logger.Get().Info("User promoted to next level",
		zap.Int64("userID", userID),
		zap.Int("previousLevel", currentLevel),
		zap.Int("newLevel", newLevel),
	)
	return &domain.LevelResult{LevelUp: true, NewLevel: &newLevel}, nil
}

// allCompleted is vacuously true for an empty set. Otherwise every item needs
// its own completed progress row; a missing row counts as not completed.
func (s *levelServiceImpl) allCompleted(ctx context.Context, t domain.ContentType, userID int64, items []domain.ContentItem) (bool, error) {
	if len(items) == 0 {
		return true, nil
	}

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	completed, err := s.contentProgressRepo.CountCompleted(ctx, t, userID, ids)
	if err != nil {
		return false, err
	}
	return completed >= len(ids), nil
}
