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

// sqlxUserRepository implements domain.UserRepository using sqlx.
type sqlxUserRepository struct {
	db *sqlx.DB
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{ID: m.ID, Level: m.Level}
}

// GetUserByID retrieves a user by ID. A missing user yields (nil, nil).
func (r *sqlxUserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	exec := GetExecutor(ctx, r.db)
	query := `SELECT id, level FROM users WHERE id = ?`

	var m models.User
	if err := exec.GetContext(ctx, &m, exec.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return toDomainUser(&m), nil
}

// UpdateUserLevel stores a new level for the user.
func (r *sqlxUserRepository) UpdateUserLevel(ctx context.Context, id int64, level int) error {
	exec := GetExecutor(ctx, r.db)
	query := `UPDATE users SET level = ? WHERE id = ?`

	result, err := exec.ExecContext(ctx, exec.Rebind(query), level, id)
	if err != nil {
		return fmt.Errorf("failed to update user level: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
