package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lingua-progress/internal/domain"
	"lingua-progress/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const testProgressColumns = `id, user_id, article_id, video_id, audio_id, is_correct`

// sqlxTestProgressRepository implements domain.TestProgressRepository using sqlx.
type sqlxTestProgressRepository struct {
	db *sqlx.DB
}

// NewSQLXTestProgressRepository creates a new instance of sqlxTestProgressRepository.
func NewSQLXTestProgressRepository(db *sqlx.DB) domain.TestProgressRepository {
	return &sqlxTestProgressRepository{db: db}
}

func nullInt64ToPtr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	id := v.Int64
	return &id
}

func toDomainTestProgress(m *models.TestProgress) *domain.TestProgress {
	if m == nil {
		return nil
	}
	return &domain.TestProgress{
		ID:        m.ID,
		UserID:    m.UserID,
		ArticleID: nullInt64ToPtr(m.ArticleID),
		VideoID:   nullInt64ToPtr(m.VideoID),
		AudioID:   nullInt64ToPtr(m.AudioID),
		IsCorrect: m.IsCorrect,
	}
}

// GetTestProgressByID retrieves a test progress record by its ID.
func (r *sqlxTestProgressRepository) GetTestProgressByID(ctx context.Context, id int64) (*domain.TestProgress, error) {
	exec := GetExecutor(ctx, r.db)
	query := `SELECT ` + testProgressColumns + ` FROM user_test_progresses WHERE id = ?`

	var m models.TestProgress
	if err := exec.GetContext(ctx, &m, exec.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get test progress %d: %w", id, err)
	}
	return toDomainTestProgress(&m), nil
}

// UpdateIsCorrect overwrites the correctness flag of a test progress record.
func (r *sqlxTestProgressRepository) UpdateIsCorrect(ctx context.Context, id int64, isCorrect bool) error {
	exec := GetExecutor(ctx, r.db)
	query := `UPDATE user_test_progresses SET is_correct = ? WHERE id = ?`

	result, err := exec.ExecContext(ctx, exec.Rebind(query), isCorrect, id)
	if err != nil {
		return fmt.Errorf("failed to update test progress %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("test progress %d vanished before update: %w", id, sql.ErrNoRows)
	}
	return nil
}

// ListTestProgressForContent returns every test progress row of userID for one content item.
func (r *sqlxTestProgressRepository) ListTestProgressForContent(ctx context.Context, userID int64, t domain.ContentType, contentID int64) ([]domain.TestProgress, error) {
	table, err := tableFor(t)
	if err != nil {
		return nil, err
	}
	exec := GetExecutor(ctx, r.db)
	query := `SELECT ` + testProgressColumns + ` FROM user_test_progresses WHERE user_id = ? AND ` + table.fk + ` = ? ORDER BY id`

	var rows []models.TestProgress
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), userID, contentID); err != nil {
		return nil, fmt.Errorf("failed to list test progress for %s %d: %w", t, contentID, err)
	}

	result := make([]domain.TestProgress, 0, len(rows))
	for i := range rows {
		result = append(result, *toDomainTestProgress(&rows[i]))
	}
	return result, nil
}
