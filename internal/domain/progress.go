package domain

import (
	"context"
	"fmt"
)

// ContentType is the discriminator clients send with a progress update.
type ContentType int

const (
	ContentNone    ContentType = 0
	ContentArticle ContentType = 1
	ContentVideo   ContentType = 2
	ContentAudio   ContentType = 3
)

// ContentTypes lists every real content type in evaluation order.
var ContentTypes = []ContentType{ContentArticle, ContentVideo, ContentAudio}

func (t ContentType) String() string {
	switch t {
	case ContentArticle:
		return "article"
	case ContentVideo:
		return "video"
	case ContentAudio:
		return "audio"
	case ContentNone:
		return "none"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// Valid reports whether t names an article, video or audio.
func (t ContentType) Valid() bool {
	return t == ContentArticle || t == ContentVideo || t == ContentAudio
}

// TestProgress is one user's outcome for one test item.
type TestProgress struct {
	ID        int64
	UserID    int64
	ArticleID *int64
	VideoID   *int64
	AudioID   *int64
	IsCorrect bool
}

// ContentID returns the foreign key stored for the given content type, if any.
func (p *TestProgress) ContentID(t ContentType) (int64, bool) {
	var ref *int64
	switch t {
	case ContentArticle:
		ref = p.ArticleID
	case ContentVideo:
		ref = p.VideoID
	case ContentAudio:
		ref = p.AudioID
	}
	if ref == nil {
		return 0, false
	}
	return *ref, true
}

// CompletionTarget is the content whose completion must be rechecked after a
// progress update. Type is ContentNone when nothing should be checked.
type CompletionTarget struct {
	Type      ContentType
	ContentID int64
}

// ResolveCompletionTarget picks the completion check for a progress record.
// Article, video and audio are tried in that order; a branch fires only when
// the record carries that reference and the requested type names it.
// Everything else resolves to ContentNone.
func ResolveCompletionTarget(p *TestProgress, requested ContentType) CompletionTarget {
	for _, t := range ContentTypes {
		if id, ok := p.ContentID(t); ok && requested == t {
			return CompletionTarget{Type: t, ContentID: id}
		}
	}
	return CompletionTarget{Type: ContentNone}
}

// ContentItem is an article, video or audio tagged with a level.
type ContentItem struct {
	ID    int64
	Type  ContentType
	Level int
}

// ContentProgress is a per-user completion flag for one content item.
type ContentProgress struct {
	UserID      int64
	ContentID   int64
	Type        ContentType
	IsCompleted bool
}

// User is the learner whose level is evaluated.
type User struct {
	ID    int64
	Level int
}

// LevelResult is the outcome of a level evaluation. NewLevel is nil when the
// user does not exist or has no content at their level.
type LevelResult struct {
	LevelUp  bool
	NewLevel *int
}

// TestProgressRepository persists test progress records.
type TestProgressRepository interface {
	// GetTestProgressByID returns (nil, nil) when the record does not exist.
	GetTestProgressByID(ctx context.Context, id int64) (*TestProgress, error)
	UpdateIsCorrect(ctx context.Context, id int64, isCorrect bool) error
	ListTestProgressForContent(ctx context.Context, userID int64, t ContentType, contentID int64) ([]TestProgress, error)
}

// UserRepository persists users.
type UserRepository interface {
	// GetUserByID returns (nil, nil) when the user does not exist.
	GetUserByID(ctx context.Context, id int64) (*User, error)
	UpdateUserLevel(ctx context.Context, id int64, level int) error
}

// ContentRepository reads content items.
type ContentRepository interface {
	GetContentByLevel(ctx context.Context, t ContentType, level int) ([]ContentItem, error)
}

// ContentProgressRepository persists per-user content completion flags.
type ContentProgressRepository interface {
	// CountCompleted counts how many of contentIDs have a completed progress row for userID.
	CountCompleted(ctx context.Context, t ContentType, userID int64, contentIDs []int64) (int, error)
	UpsertCompletion(ctx context.Context, progress *ContentProgress) error
}

// TransactionManager runs fn inside a single database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserLocker serialises work per user. Unlock must be called with a context
// that is still usable after the guarded work finished.
type UserLocker interface {
	Lock(ctx context.Context, userID int64) (unlock func(ctx context.Context) error, err error)
}
