package service

import (
	"context"

	"pixelgram/internal/models"
	"pixelgram/internal/observability"
	"pixelgram/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// GraphService owns the follow and like edges.
type GraphService struct {
	users   repository.UserRepository
	posts   repository.PostRepository
	likes   repository.LikeRepository
	follows repository.FollowRepository
	reels   repository.ReelRepository
}

func NewGraphService(store *repository.Store) *GraphService {
	return &GraphService{
		users:   store.Users,
		posts:   store.Posts,
		likes:   store.Likes,
		follows: store.Follows,
		reels:   store.Reels,
	}
}

// ToggleFollow follows targetUsername, or unfollows if already following,
// and reports whether the follower now follows the target.
func (s *GraphService) ToggleFollow(ctx context.Context, followerID uint, targetUsername string) (bool, error) {
	span, ctx := observability.StartSpan(ctx, "GraphService", "ToggleFollow",
		attribute.Int("follower_id", int(followerID)))
	following, err := s.toggleFollow(ctx, followerID, targetUsername)
	span.Finish(err)
	return following, err
}

func (s *GraphService) toggleFollow(ctx context.Context, followerID uint, targetUsername string) (bool, error) {
	target, err := s.users.GetByUsername(ctx, targetUsername)
	if err != nil {
		return false, err
	}
	if target.ID == followerID {
		return false, models.NewValidationError("Cannot follow yourself")
	}
	following, err := s.follows.Toggle(ctx, followerID, target.ID)
	if err != nil {
		return false, err
	}
	observability.ToggleOperationsTotal.WithLabelValues("follow", observability.ToggleState(following)).Inc()
	return following, nil
}

// ToggleLike likes or unlikes a post and reports whether it is now liked.
func (s *GraphService) ToggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	span, ctx := observability.StartSpan(ctx, "GraphService", "ToggleLike",
		attribute.Int("user_id", int(userID)), attribute.Int("post_id", int(postID)))
	liked, err := s.toggleLike(ctx, userID, postID)
	span.Finish(err)
	return liked, err
}

func (s *GraphService) toggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return false, err
	}
	liked, err := s.likes.Toggle(ctx, userID, postID)
	if err != nil {
		return false, err
	}
	observability.ToggleOperationsTotal.WithLabelValues("like", observability.ToggleState(liked)).Inc()
	return liked, nil
}

// ToggleReelLike likes or unlikes a reel and reports whether it is now liked.
func (s *GraphService) ToggleReelLike(ctx context.Context, userID, reelID uint) (bool, error) {
	liked, err := s.reels.ToggleLike(ctx, userID, reelID)
	if err != nil {
		return false, err
	}
	observability.ToggleOperationsTotal.WithLabelValues("reel_like", observability.ToggleState(liked)).Inc()
	return liked, nil
}

// Followers lists the users following username, most recent first.
func (s *GraphService) Followers(ctx context.Context, username string) ([]models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.follows.ListFollowers(ctx, user.ID)
}

// Following lists the users username follows, most recent first.
func (s *GraphService) Following(ctx context.Context, username string) ([]models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.follows.ListFollowing(ctx, user.ID)
}
