package repository

import (
	"context"
	"errors"

	"pixelgram/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReelRepository defines persistence operations for reels and their likes.
type ReelRepository interface {
	Create(ctx context.Context, reel *models.Reel) error
	GetByID(ctx context.Context, id uint) (*models.Reel, error)
	// List returns every reel, newest first.
	List(ctx context.Context) ([]models.Reel, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Reel, error)
	// ToggleLike flips the ReelLike edge and moves Reel.Likes with it.
	ToggleLike(ctx context.Context, userID, reelID uint) (bool, error)
	// AddView increments the view counter and returns the new value.
	AddView(ctx context.Context, reelID uint) (int, error)
}

type reelRepository struct {
	db *gorm.DB
}

// NewReelRepository creates a new reel repository
func NewReelRepository(db *gorm.DB) ReelRepository {
	return &reelRepository{db: db}
}

func (r *reelRepository) Create(ctx context.Context, reel *models.Reel) error {
	if reel.Filter == "" {
		reel.Filter = models.DefaultReelFilter
	}
	if err := r.db.WithContext(ctx).Omit("User").Create(reel).Error; err != nil {
		return models.NewStorageError("create reel", err)
	}
	return nil
}

func (r *reelRepository) GetByID(ctx context.Context, id uint) (*models.Reel, error) {
	var reel models.Reel
	if err := r.db.WithContext(ctx).Preload("User").First(&reel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Reel", id)
		}
		return nil, models.NewStorageError("get reel", err)
	}
	return &reel, nil
}

func (r *reelRepository) List(ctx context.Context) ([]models.Reel, error) {
	var reels []models.Reel
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC, id DESC").
		Find(&reels).Error
	if err != nil {
		return nil, models.NewStorageError("list reels", err)
	}
	return reels, nil
}

func (r *reelRepository) ListByUser(ctx context.Context, userID uint) ([]models.Reel, error) {
	var reels []models.Reel
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&reels).Error
	if err != nil {
		return nil, models.NewStorageError("list user reels", err)
	}
	return reels, nil
}

func (r *reelRepository) ToggleLike(ctx context.Context, userID, reelID uint) (bool, error) {
	var liked bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := reelExists(tx, reelID); err != nil {
			return err
		}
		var err error
		liked, err = toggleEdge(tx, &models.Reel{}, reelID, "likes",
			func(tx *gorm.DB) *gorm.DB {
				return tx.Where("user_id = ? AND reel_id = ?", userID, reelID).Delete(&models.ReelLike{})
			},
			func(tx *gorm.DB) *gorm.DB {
				return tx.Clauses(clause.OnConflict{DoNothing: true}).
					Create(&models.ReelLike{UserID: userID, ReelID: reelID})
			},
		)
		return err
	})
	if err != nil {
		return false, storageError("toggle reel like", err)
	}
	return liked, nil
}

func (r *reelRepository) AddView(ctx context.Context, reelID uint) (int, error) {
	var views int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Reel{}).Where("id = ?", reelID).
			UpdateColumn("views", gorm.Expr("views + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Reel", reelID)
		}
		var reel models.Reel
		if err := tx.Select("views").First(&reel, reelID).Error; err != nil {
			return err
		}
		views = reel.Views
		return nil
	})
	if err != nil {
		return 0, storageError("add reel view", err)
	}
	return views, nil
}

func reelExists(tx *gorm.DB, reelID uint) error {
	var reel models.Reel
	if err := tx.Select("id").First(&reel, reelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Reel", reelID)
		}
		return err
	}
	return nil
}
