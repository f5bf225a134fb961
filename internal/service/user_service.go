package service

import (
	"context"
	"strconv"

	"pixelgram/internal/cache"
	"pixelgram/internal/models"
	"pixelgram/internal/repository"
	"pixelgram/internal/validation"
)

// MediaDiscarder deletes stored uploads that are no longer referenced.
type MediaDiscarder interface {
	Discard(ctx context.Context, url string)
}

type UserService struct {
	users repository.UserRepository
	cache *cache.JSON
	media MediaDiscarder
}

// UpdateProfileInput is a validated profile patch plus an optional freshly
// stored picture URL.
type UpdateProfileInput struct {
	ActorID        uint
	TargetID       uint
	Fields         validation.UpdateProfile
	ProfilePicture string
}

func NewUserService(users repository.UserRepository, c *cache.JSON, discarder MediaDiscarder) *UserService {
	return &UserService{users: users, cache: c, media: discarder}
}

// Get resolves a numeric id or, failing that, an exact username.
func (s *UserService) Get(ctx context.Context, usernameOrID string) (*models.User, error) {
	if id, err := strconv.ParseUint(usernameOrID, 10, 64); err == nil {
		return s.users.GetByID(ctx, uint(id))
	}
	return s.users.GetByUsername(ctx, usernameOrID)
}

// Directory lists every user ordered by id. The list is cached briefly.
func (s *UserService) Directory(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.cache.GetOrLoad(ctx, cache.DirectoryKey, cache.DirectoryTTL, &users, func(ctx context.Context) (any, error) {
		return s.users.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Search matches query against usernames and full names. An empty query matches nobody.
func (s *UserService) Search(ctx context.Context, query string) ([]models.User, error) {
	if query == "" {
		return []models.User{}, nil
	}
	return s.users.Search(ctx, query)
}

// UpdateProfile applies a partial update to the actor's own profile.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.users.GetByID(ctx, in.TargetID)
	if err != nil {
		s.media.Discard(ctx, in.ProfilePicture)
		return nil, err
	}
	if in.ActorID != in.TargetID {
		s.media.Discard(ctx, in.ProfilePicture)
		return nil, models.NewForbiddenError("You can only update your own profile")
	}

	patch := models.UserPatch{
		Username: in.Fields.Username,
		FullName: in.Fields.FullName,
		Email:    in.Fields.Email,
		Bio:      in.Fields.Bio,
	}
	if in.ProfilePicture != "" {
		patch.ProfilePicture = &in.ProfilePicture
	}
	if patch.Empty() {
		return user, nil
	}

	updated, err := s.users.Update(ctx, in.TargetID, patch)
	if err != nil {
		s.media.Discard(ctx, in.ProfilePicture)
		return nil, err
	}
	if in.ProfilePicture != "" && user.ProfilePicture != in.ProfilePicture {
		s.media.Discard(ctx, user.ProfilePicture)
	}
	s.cache.Invalidate(ctx, cache.DirectoryKey)
	return updated, nil
}
