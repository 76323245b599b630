package repository

import (
	"context"
	"fmt"

	"lingua-progress/internal/domain"
	"lingua-progress/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

type sqlxContentRepository struct {
	db *sqlx.DB
}

func NewSQLXContentRepository(db *sqlx.DB) domain.ContentRepository {
	return &sqlxContentRepository{db: db}
}

// GetContentByLevel lists every item of type t tagged with level.
func (r *sqlxContentRepository) GetContentByLevel(ctx context.Context, t domain.ContentType, level int) ([]domain.ContentItem, error) {
	table, err := tableFor(t)
	if err != nil {
		return nil, err
	}
	exec := GetExecutor(ctx, r.db)
	query := `SELECT id, level FROM ` + table.content + ` WHERE level = ? ORDER BY id`

	var rows []models.ContentItem
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), level); err != nil {
		return nil, fmt.Errorf("failed to get %s content for level %d: %w", t, level, err)
	}

	items := make([]domain.ContentItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.ContentItem{ID: row.ID, Type: t, Level: row.Level})
	}
	return items, nil
}
