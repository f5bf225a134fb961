// Package memory is an in-process implementation of the repository interfaces
// for development and tests. All repositories share one lock so toggles and
// their counters change together.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"pixelgram/internal/models"
	"pixelgram/internal/repository"
)

type state struct {
	mu sync.RWMutex

	users     map[uint]models.User
	posts     map[uint]models.Post
	likes     map[uint]models.Like
	follows   map[uint]models.Follow
	stories   map[uint]models.Story
	messages  map[uint]models.Message
	comments  map[uint]models.Comment
	reels     map[uint]models.Reel
	reelLikes map[uint]models.ReelLike

	nextID map[string]uint
	now    func() time.Time
}

// NewStore returns a repository.Store that keeps everything in maps.
func NewStore() *repository.Store {
	s := &state{
		users:     make(map[uint]models.User),
		posts:     make(map[uint]models.Post),
		likes:     make(map[uint]models.Like),
		follows:   make(map[uint]models.Follow),
		stories:   make(map[uint]models.Story),
		messages:  make(map[uint]models.Message),
		comments:  make(map[uint]models.Comment),
		reels:     make(map[uint]models.Reel),
		reelLikes: make(map[uint]models.ReelLike),
		nextID:    make(map[string]uint),
		now:       func() time.Time { return time.Now().UTC() },
	}
	return &repository.Store{
		Users:    &userRepo{s},
		Posts:    &postRepo{s},
		Likes:    &likeRepo{s},
		Follows:  &followRepo{s},
		Stories:  &storyRepo{s},
		Messages: &messageRepo{s},
		Comments: &commentRepo{s},
		Reels:    &reelRepo{s},
		Ping:     ctxErr,
	}
}

// id hands out the next surrogate key for a table. Callers hold the write lock.
func (s *state) id(table string) uint {
	s.nextID[table]++
	return s.nextID[table]
}

// stamp returns t, or the current time if t is zero.
func (s *state) stamp(t time.Time) time.Time {
	if t.IsZero() {
		return s.now()
	}
	return t
}

// owner returns a copy of the user for embedding, or nil. Callers hold a lock.
func (s *state) owner(id uint) *models.User {
	u, ok := s.users[id]
	if !ok {
		return nil
	}
	return &u
}

func ctxErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return models.NewStorageError("memory store", err)
	}
	return nil
}

// newestFirst orders by CreatedAt descending with id as tie-breaker.
func newestFirst[T any](items []T, created func(T) time.Time, id func(T) uint) {
	sort.SliceStable(items, func(i, j int) bool {
		ci, cj := created(items[i]), created(items[j])
		if !ci.Equal(cj) {
			return ci.After(cj)
		}
		return id(items[i]) > id(items[j])
	})
}

// oldestFirst orders by CreatedAt ascending with id as tie-breaker.
func oldestFirst[T any](items []T, created func(T) time.Time, id func(T) uint) {
	sort.SliceStable(items, func(i, j int) bool {
		ci, cj := created(items[i]), created(items[j])
		if !ci.Equal(cj) {
			return ci.Before(cj)
		}
		return id(items[i]) < id(items[j])
	})
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), sub)
}
