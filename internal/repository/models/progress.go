package models

import "database/sql"

// TestProgress mirrors a row of user_test_progresses.
type TestProgress struct {
	ID        int64         `db:"id"`
	UserID    int64         `db:"user_id"`
	ArticleID sql.NullInt64 `db:"article_id"` // at most one of the three content references is set
	VideoID   sql.NullInt64 `db:"video_id"`
	AudioID   sql.NullInt64 `db:"audio_id"`
	IsCorrect bool          `db:"is_correct"`
}

// User mirrors the columns of users this service reads and writes.
type User struct {
	ID    int64 `db:"id"`
	Level int   `db:"level"`
}

// ContentItem mirrors a row of articles, videos or audios.
type ContentItem struct {
	ID    int64 `db:"id"`
	Level int   `db:"level"`
}
