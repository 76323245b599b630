package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"lingua-progress/internal/domain"
	"lingua-progress/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testProgressRowColumns = []string{"id", "user_id", "article_id", "video_id", "audio_id", "is_correct"}

func TestToDomainTestProgress(t *testing.T) {
	m := &models.TestProgress{
		ID:        7,
		UserID:    42,
		ArticleID: sql.NullInt64{Int64: 3, Valid: true},
		IsCorrect: true,
	}

	p := toDomainTestProgress(m)
	require.NotNil(t, p)
	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, int64(42), p.UserID)
	assert.Equal(t, int64Ptr(3), p.ArticleID)
	assert.Nil(t, p.VideoID)
	assert.Nil(t, p.AudioID)
	assert.True(t, p.IsCorrect)

	assert.Nil(t, toDomainTestProgress(nil))
}

func TestSQLXTestProgressRepository_GetTestProgressByID_Success(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXTestProgressRepository(db)

	rows := sqlmock.NewRows(testProgressRowColumns).AddRow(7, 42, 3, nil, nil, false)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, article_id, video_id, audio_id, is_correct FROM user_test_progresses WHERE id = ?`)).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	progress, err := repo.GetTestProgressByID(context.Background(), 7)

	require.NoError(t, err)
	require.NotNil(t, progress)
	assert.Equal(t, int64(42), progress.UserID)
	assert.Equal(t, int64Ptr(3), progress.ArticleID)
	assert.Nil(t, progress.VideoID)
	assert.False(t, progress.IsCorrect)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXTestProgressRepository_GetTestProgressByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXTestProgressRepository(db)

	mock.ExpectQuery(`SELECT .* FROM user_test_progresses WHERE id = \?`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	progress, err := repo.GetTestProgressByID(context.Background(), 99)

	assert.NoError(t, err, "Expected no error from adapter when record not found")
	assert.Nil(t, progress)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXTestProgressRepository_GetTestProgressByID_DBError(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXTestProgressRepository(db)

	dbErr := errors.New("connection refused")
	mock.ExpectQuery(`SELECT .* FROM user_test_progresses WHERE id = \?`).
		WithArgs(int64(7)).
		WillReturnError(dbErr)

	progress, err := repo.GetTestProgressByID(context.Background(), 7)

	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, progress)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXTestProgressRepository_UpdateIsCorrect(t *testing.T) {
	query := regexp.QuoteMeta(`UPDATE user_test_progresses SET is_correct = ? WHERE id = ?`)

	t.Run("Success", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewSQLXTestProgressRepository(db)

		mock.ExpectExec(query).WithArgs(true, int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateIsCorrect(context.Background(), 7, true))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoRows", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewSQLXTestProgressRepository(db)

		mock.ExpectExec(query).WithArgs(false, int64(7)).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateIsCorrect(context.Background(), 7, false)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQLXTestProgressRepository_ListTestProgressForContent(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXTestProgressRepository(db)

	rows := sqlmock.NewRows(testProgressRowColumns).
		AddRow(7, 42, nil, 5, nil, true).
		AddRow(8, 42, nil, 5, nil, false)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM user_test_progresses WHERE user_id = ? AND video_id = ? ORDER BY id`)).
		WithArgs(int64(42), int64(5)).
		WillReturnRows(rows)

	list, err := repo.ListTestProgressForContent(context.Background(), 42, domain.ContentVideo, 5)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64Ptr(5), list[0].VideoID)
	assert.True(t, list[0].IsCorrect)
	assert.False(t, list[1].IsCorrect)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXTestProgressRepository_ListTestProgressForContent_UnknownType(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXTestProgressRepository(db)

	_, err := repo.ListTestProgressForContent(context.Background(), 42, domain.ContentNone, 5)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
