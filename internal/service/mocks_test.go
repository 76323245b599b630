package service

import (
	"context"

	"lingua-progress/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockTestProgressRepository is a mock type for domain.TestProgressRepository
type MockTestProgressRepository struct {
	mock.Mock
}

func (m *MockTestProgressRepository) GetTestProgressByID(ctx context.Context, id int64) (*domain.TestProgress, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TestProgress), args.Error(1)
}

func (m *MockTestProgressRepository) UpdateIsCorrect(ctx context.Context, id int64, isCorrect bool) error {
	args := m.Called(ctx, id, isCorrect)
	return args.Error(0)
}

func (m *MockTestProgressRepository) ListTestProgressForContent(ctx context.Context, userID int64, t domain.ContentType, contentID int64) ([]domain.TestProgress, error) {
	args := m.Called(ctx, userID, t, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TestProgress), args.Error(1)
}

// MockUserRepository is a mock type for domain.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUserLevel(ctx context.Context, id int64, level int) error {
	args := m.Called(ctx, id, level)
	return args.Error(0)
}

// MockContentRepository is a mock type for domain.ContentRepository
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) GetContentByLevel(ctx context.Context, t domain.ContentType, level int) ([]domain.ContentItem, error) {
	args := m.Called(ctx, t, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContentItem), args.Error(1)
}

// MockContentProgressRepository is a mock type for domain.ContentProgressRepository
type MockContentProgressRepository struct {
	mock.Mock
}

func (m *MockContentProgressRepository) CountCompleted(ctx context.Context, t domain.ContentType, userID int64, contentIDs []int64) (int, error) {
	args := m.Called(ctx, t, userID, contentIDs)
	return args.Int(0), args.Error(1)
}

func (m *MockContentProgressRepository) UpsertCompletion(ctx context.Context, progress *domain.ContentProgress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

// MockCompletionService is a mock type for CompletionService
type MockCompletionService struct {
	mock.Mock
}

func (m *MockCompletionService) CheckAndUpdateCompletion(ctx context.Context, t domain.ContentType, contentID, userID int64) error {
	args := m.Called(ctx, t, contentID, userID)
	return args.Error(0)
}

// MockLevelService is a mock type for LevelService
type MockLevelService struct {
	mock.Mock
}

func (m *MockLevelService) EvaluateAndMaybePromote(ctx context.Context, userID int64) (*domain.LevelResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LevelResult), args.Error(1)
}

// MockTransactionManager runs fn inline unless an error is configured.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

// MockUserLocker is a mock type for domain.UserLocker
type MockUserLocker struct {
	mock.Mock
	unlocked int
}

func (m *MockUserLocker) Lock(ctx context.Context, userID int64) (func(ctx context.Context) error, error) {
	args := m.Called(ctx, userID)
	if err := args.Error(0); err != nil {
		return nil, err
	}
	return func(ctx context.Context) error {
		m.unlocked++
		return nil
	}, nil
}

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }
