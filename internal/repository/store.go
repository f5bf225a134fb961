// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"pixelgram/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// maxToggleAttempts bounds how often a toggle retries after losing an insert race.
const maxToggleAttempts = 3

var errToggleContention = errors.New("toggle did not settle after concurrent updates")

// Store bundles every repository so callers can swap the backing store as one unit.
type Store struct {
	Users    UserRepository
	Posts    PostRepository
	Likes    LikeRepository
	Follows  FollowRepository
	Stories  StoryRepository
	Messages MessageRepository
	Comments CommentRepository
	Reels    ReelRepository

	// Ping checks the backing store. A nil Ping reports healthy.
	Ping func(ctx context.Context) error
}

// NewStore returns a Store backed by gorm.
func NewStore(db *gorm.DB) *Store {
	return &Store{
		Users:    NewUserRepository(db),
		Posts:    NewPostRepository(db),
		Likes:    NewLikeRepository(db),
		Follows:  NewFollowRepository(db),
		Stories:  NewStoryRepository(db),
		Messages: NewMessageRepository(db),
		Comments: NewCommentRepository(db),
		Reels:    NewReelRepository(db),
		Ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint")
}

// storageError passes AppErrors through and wraps everything else.
func storageError(op string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return models.NewStorageError(op, err)
}

// likeClause escapes a search term for a LIKE pattern with '\' as the escape character.
func likeClause(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(q)) + "%"
}

// decrementFloor is a portable "column - 1 but never below zero" expression.
func decrementFloor(column string) any {
	return gorm.Expr("CASE WHEN " + column + " > 0 THEN " + column + " - 1 ELSE 0 END")
}
