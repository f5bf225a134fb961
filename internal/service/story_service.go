package service

import (
	"context"
	"time"

	"pixelgram/internal/media"
	"pixelgram/internal/models"
	"pixelgram/internal/repository"
)

type StoryService struct {
	users   repository.UserRepository
	stories repository.StoryRepository
	media   MediaDiscarder
	now     func() time.Time
}

func NewStoryService(store *repository.Store, discarder MediaDiscarder) *StoryService {
	return &StoryService{
		users:   store.Users,
		stories: store.Stories,
		media:   discarder,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Create publishes a story that stays visible for models.StoryLifetime.
func (s *StoryService) Create(ctx context.Context, userID uint, file *media.StoredFile) (*models.Story, error) {
	story := &models.Story{
		UserID:    userID,
		ImageURL:  file.URL,
		CreatedAt: s.now(),
	}
	if err := s.stories.Create(ctx, story); err != nil {
		s.media.Discard(ctx, file.URL)
		return nil, err
	}
	if owner, err := s.users.GetByID(ctx, userID); err == nil {
		story.User = owner
	}
	return story, nil
}
