package repository

import (
	"context"
	"database/sql"
	"fmt"

	"lingua-progress/internal/domain"

	"github.com/jmoiron/sqlx"
)

// DBTX is an interface abstracting *sqlx.DB and *sqlx.Tx for repository use.
type DBTX interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	Rebind(query string) string
}

var (
	_ DBTX = (*sqlx.DB)(nil)
	_ DBTX = (*sqlx.Tx)(nil)
)

// contentTable names the tables and foreign key column backing one content type.
type contentTable struct {
	content  string
	progress string
	fk       string
}

var contentTables = map[domain.ContentType]contentTable{
	domain.ContentArticle: {content: "articles", progress: "user_article_progresses", fk: "article_id"},
	domain.ContentVideo:   {content: "videos", progress: "user_video_progresses", fk: "video_id"},
	domain.ContentAudio:   {content: "audios", progress: "user_audio_progresses", fk: "audio_id"},
}

func tableFor(t domain.ContentType) (contentTable, error) {
	table, ok := contentTables[t]
	if !ok {
		return contentTable{}, fmt.Errorf("unsupported content type %s", t)
	}
	return table, nil
}
