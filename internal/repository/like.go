package repository

import (
	"context"
	"errors"

	"pixelgram/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository owns the Like edges and is the only writer of Post.Likes.
type LikeRepository interface {
	// Create inserts the edge and increments the post counter in one transaction.
	Create(ctx context.Context, userID, postID uint) (*models.Like, error)
	// Delete removes the edge and decrements the post counter, never below zero.
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, userID, postID uint) (*models.Like, error)
	// Toggle flips the edge atomically and reports whether it now exists.
	Toggle(ctx context.Context, userID, postID uint) (bool, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, userID, postID uint) (*models.Like, error) {
	like := models.Like{UserID: userID, PostID: postID}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := postExists(tx, postID); err != nil {
			return err
		}
		if err := tx.Create(&like).Error; err != nil {
			if isUniqueConstraintError(err) {
				return models.NewConflictError("Post already liked")
			}
			return err
		}
		return adjustCounter(tx, &models.Post{}, postID, "likes", 1)
	})
	if err != nil {
		return nil, storageError("create like", err)
	}
	return &like, nil
}

func (r *likeRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var like models.Like
		if err := tx.First(&like, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Like", id)
			}
			return err
		}
		res := tx.Delete(&like)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return adjustCounter(tx, &models.Post{}, like.PostID, "likes", -1)
	})
	return storageError("delete like", err)
}

func (r *likeRepository) Get(ctx context.Context, userID, postID uint) (*models.Like, error) {
	var like models.Like
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Like", postID)
		}
		return nil, models.NewStorageError("get like", err)
	}
	return &like, nil
}

func (r *likeRepository) Toggle(ctx context.Context, userID, postID uint) (bool, error) {
	var liked bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := postExists(tx, postID); err != nil {
			return err
		}
		var err error
		liked, err = toggleEdge(tx, &models.Post{}, postID, "likes",
			func(tx *gorm.DB) *gorm.DB {
				return tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Like{})
			},
			func(tx *gorm.DB) *gorm.DB {
				return tx.Clauses(clause.OnConflict{DoNothing: true}).
					Create(&models.Like{UserID: userID, PostID: postID})
			},
		)
		return err
	})
	if err != nil {
		return false, storageError("toggle like", err)
	}
	return liked, nil
}

func postExists(tx *gorm.DB, postID uint) error {
	var post models.Post
	if err := tx.Select("id").First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", postID)
		}
		return err
	}
	return nil
}

// adjustCounter moves a denormalized counter by delta; decrements are floored
// at zero. An empty column means the edge has no counter.
func adjustCounter(tx *gorm.DB, model any, id uint, column string, delta int) error {
	if column == "" {
		return nil
	}
	var expr any
	if delta > 0 {
		expr = gorm.Expr(column+" + ?", delta)
	} else {
		expr = decrementFloor(column)
	}
	return tx.Model(model).Where("id = ?", id).UpdateColumn(column, expr).Error
}

// toggleEdge deletes the edge if present, otherwise inserts it, and moves the
// owner's counter with it when column is set. An insert that loses a race to a concurrent insert
// retries the delete so every call flips the state exactly once.
func toggleEdge(
	tx *gorm.DB,
	owner any,
	ownerID uint,
	column string,
	remove func(*gorm.DB) *gorm.DB,
	insert func(*gorm.DB) *gorm.DB,
) (bool, error) {
	for attempt := 0; attempt < maxToggleAttempts; attempt++ {
		res := remove(tx)
		if res.Error != nil {
			return false, res.Error
		}
		if res.RowsAffected > 0 {
			return false, adjustCounter(tx, owner, ownerID, column, -1)
		}

		res = insert(tx)
		if res.Error != nil {
			return false, res.Error
		}
		if res.RowsAffected > 0 {
			return true, adjustCounter(tx, owner, ownerID, column, 1)
		}
	}
	return false, errToggleContention
}
