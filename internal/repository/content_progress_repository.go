package repository

import (
	"context"
	"fmt"

	"lingua-progress/internal/domain"

	"github.com/jmoiron/sqlx"
)

type sqlxContentProgressRepository struct {
	db *sqlx.DB
}

func NewSQLXContentProgressRepository(db *sqlx.DB) domain.ContentProgressRepository {
	return &sqlxContentProgressRepository{db: db}
}

// CountCompleted counts the distinct items among contentIDs that userID completed.
func (r *sqlxContentProgressRepository) CountCompleted(ctx context.Context, t domain.ContentType, userID int64, contentIDs []int64) (int, error) {
	if len(contentIDs) == 0 {
		return 0, nil
	}
	table, err := tableFor(t)
	if err != nil {
		return 0, err
	}

	query, args, err := sqlx.In(
		`SELECT COUNT(DISTINCT `+table.fk+`) FROM `+table.progress+` WHERE user_id = ? AND is_completed = ? AND `+table.fk+` IN (?)`,
		userID, true, contentIDs,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to build completion query: %w", err)
	}

	exec := GetExecutor(ctx, r.db)
	var count int
	if err := exec.GetContext(ctx, &count, exec.Rebind(query), args...); err != nil {
		return 0, fmt.Errorf("failed to count completed %s progress: %w", t, err)
	}
	return count, nil
}

// UpsertCompletion writes the completion flag, inserting the row when it does not exist yet.
func (r *sqlxContentProgressRepository) UpsertCompletion(ctx context.Context, progress *domain.ContentProgress) error {
	table, err := tableFor(progress.Type)
	if err != nil {
		return err
	}
	exec := GetExecutor(ctx, r.db)

	update := `UPDATE ` + table.progress + ` SET is_completed = ? WHERE user_id = ? AND ` + table.fk + ` = ?`
	result, err := exec.ExecContext(ctx, exec.Rebind(update), progress.IsCompleted, progress.UserID, progress.ContentID)
	if err != nil {
		return fmt.Errorf("failed to update %s progress: %w", progress.Type, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected > 0 {
		return nil
	}

	insert := `INSERT INTO ` + table.progress + ` (user_id, ` + table.fk + `, is_completed) VALUES (?, ?, ?)`
	if _, err := exec.ExecContext(ctx, exec.Rebind(insert), progress.UserID, progress.ContentID, progress.IsCompleted); err != nil {
		return fmt.Errorf("failed to insert %s progress: %w", progress.Type, err)
	}
	return nil
}
