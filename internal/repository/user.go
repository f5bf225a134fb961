package repository

import (
	"context"
	"errors"

	"pixelgram/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	// GetByUsername is an exact, case-sensitive match.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// List returns every user ordered by id.
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id uint, patch models.UserPatch) (*models.User, error)
	// Search is a case-insensitive substring match on username or full name.
	Search(ctx context.Context, query string) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Username already exists")
		}
		return models.NewStorageError("create user", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewStorageError("get user", err)
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", username)
		}
		return nil, models.NewStorageError("get user by username", err)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, models.NewStorageError("list users", err)
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, id uint, patch models.UserPatch) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return err
		}
		if patch.Empty() {
			return nil
		}
		if err := tx.Model(&user).Updates(patch.Columns()).Error; err != nil {
			if isUniqueConstraintError(err) {
				return models.NewConflictError("Username already exists")
			}
			return err
		}
		patch.Apply(&user)
		return nil
	})
	if err != nil {
		return nil, storageError("update user", err)
	}
	return &user, nil
}

func (r *userRepository) Search(ctx context.Context, query string) ([]models.User, error) {
	pattern := likeClause(query)
	var users []models.User
	err := r.db.WithContext(ctx).
		Where(`LOWER(username) LIKE ? ESCAPE '\' OR LOWER(full_name) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("id ASC").
		Find(&users).Error
	if err != nil {
		return nil, models.NewStorageError("search users", err)
	}
	return users, nil
}
