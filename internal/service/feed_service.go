package service

import (
	"context"
	"time"

	"pixelgram/internal/models"
	"pixelgram/internal/repository"
)

// FeedService answers the read-only timeline queries.
type FeedService struct {
	users    repository.UserRepository
	posts    repository.PostRepository
	stories  repository.StoryRepository
	messages repository.MessageRepository
	reels    repository.ReelRepository
	now      func() time.Time
}

func NewFeedService(store *repository.Store) *FeedService {
	return &FeedService{
		users:    store.Users,
		posts:    store.Posts,
		stories:  store.Stories,
		messages: store.Messages,
		reels:    store.Reels,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// GlobalFeed returns every post, newest first.
func (s *FeedService) GlobalFeed(ctx context.Context) ([]models.Post, error) {
	return s.posts.ListAll(ctx)
}

// ProfileFeed returns username's posts, newest first.
func (s *FeedService) ProfileFeed(ctx context.Context, username string) ([]models.Post, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.posts.ListByUser(ctx, user.ID)
}

// StoryTray returns every unexpired story, newest first.
func (s *FeedService) StoryTray(ctx context.Context) ([]models.Story, error) {
	return s.stories.ListActive(ctx, s.now())
}

// UserStories returns username's unexpired stories, newest first.
func (s *FeedService) UserStories(ctx context.Context, username string) ([]models.Story, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.stories.ListActiveByUser(ctx, user.ID, s.now())
}

// Conversation returns the messages between a and b, oldest first.
func (s *FeedService) Conversation(ctx context.Context, a, b uint) ([]models.Message, error) {
	return s.messages.ListBetween(ctx, a, b)
}

// Reels returns every stored reel, newest first.
func (s *FeedService) Reels(ctx context.Context) ([]models.Reel, error) {
	return s.reels.List(ctx)
}
