package repository

import (
	"context"
	"errors"

	"pixelgram/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository owns the directed Follow edges. Follows carry no counters.
type FollowRepository interface {
	Create(ctx context.Context, followerID, followingID uint) (*models.Follow, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, followerID, followingID uint) (*models.Follow, error)
	// Toggle flips the edge atomically and reports whether it now exists.
	Toggle(ctx context.Context, followerID, followingID uint) (bool, error)
	ListFollowers(ctx context.Context, userID uint) ([]models.User, error)
	ListFollowing(ctx context.Context, userID uint) ([]models.User, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	follow := models.Follow{FollowerID: followerID, FollowingID: followingID}
	if err := r.db.WithContext(ctx).Create(&follow).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, models.NewConflictError("Already following")
		}
		return nil, models.NewStorageError("create follow", err)
	}
	return &follow, nil
}

func (r *followRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Follow{}, id)
	if res.Error != nil {
		return models.NewStorageError("delete follow", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Follow", id)
	}
	return nil
}

func (r *followRepository) Get(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	var follow models.Follow
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		First(&follow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Follow", followingID)
		}
		return nil, models.NewStorageError("get follow", err)
	}
	return &follow, nil
}

func (r *followRepository) Toggle(ctx context.Context, followerID, followingID uint) (bool, error) {
	var following bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		following, err = toggleEdge(tx, nil, 0, "",
			func(tx *gorm.DB) *gorm.DB {
				return tx.Where("follower_id = ? AND following_id = ?", followerID, followingID).
					Delete(&models.Follow{})
			},
			func(tx *gorm.DB) *gorm.DB {
				return tx.Clauses(clause.OnConflict{DoNothing: true}).
					Create(&models.Follow{FollowerID: followerID, FollowingID: followingID})
			},
		)
		return err
	})
	if err != nil {
		return false, storageError("toggle follow", err)
	}
	return following, nil
}

func (r *followRepository) ListFollowers(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Select("users.*").
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.following_id = ?", userID).
		Order("follows.id DESC").
		Find(&users).Error
	if err != nil {
		return nil, models.NewStorageError("list followers", err)
	}
	return users, nil
}

func (r *followRepository) ListFollowing(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Select("users.*").
		Joins("JOIN follows ON follows.following_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("follows.id DESC").
		Find(&users).Error
	if err != nil {
		return nil, models.NewStorageError("list following", err)
	}
	return users, nil
}
