package repository

import (
	"context"
	"time"

	"pixelgram/internal/models"

	"gorm.io/gorm"
)

// StoryRepository defines persistence operations for stories.
// Expired stories are never deleted; reads filter them out.
type StoryRepository interface {
	// Create stamps ExpiresAt as CreatedAt plus the story lifetime.
	Create(ctx context.Context, story *models.Story) error
	ListActive(ctx context.Context, asOf time.Time) ([]models.Story, error)
	ListActiveByUser(ctx context.Context, userID uint, asOf time.Time) ([]models.Story, error)
}

type storyRepository struct {
	db *gorm.DB
}

// NewStoryRepository creates a new story repository
func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) Create(ctx context.Context, story *models.Story) error {
	if story.CreatedAt.IsZero() {
		story.CreatedAt = time.Now().UTC()
	}
	story.ExpiresAt = story.CreatedAt.Add(models.StoryLifetime)
	if err := r.db.WithContext(ctx).Omit("User").Create(story).Error; err != nil {
		return models.NewStorageError("create story", err)
	}
	return nil
}

func (r *storyRepository) ListActive(ctx context.Context, asOf time.Time) ([]models.Story, error) {
	var stories []models.Story
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("expires_at > ?", asOf).
		Order("created_at DESC, id DESC").
		Find(&stories).Error
	if err != nil {
		return nil, models.NewStorageError("list stories", err)
	}
	return stories, nil
}

func (r *storyRepository) ListActiveByUser(ctx context.Context, userID uint, asOf time.Time) ([]models.Story, error) {
	var stories []models.Story
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ? AND expires_at > ?", userID, asOf).
		Order("created_at DESC, id DESC").
		Find(&stories).Error
	if err != nil {
		return nil, models.NewStorageError("list user stories", err)
	}
	return stories, nil
}
