package memory

import (
	"context"
	"time"

	"pixelgram/internal/models"
)

type storyRepo struct{ s *state }

func (r *storyRepo) Create(ctx context.Context, story *models.Story) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	story.ID = r.s.id("stories")
	story.CreatedAt = r.s.stamp(story.CreatedAt)
	story.ExpiresAt = story.CreatedAt.Add(models.StoryLifetime)
	story.User = nil
	r.s.stories[story.ID] = *story
	return nil
}

func (r *storyRepo) ListActive(ctx context.Context, asOf time.Time) ([]models.Story, error) {
	return r.list(ctx, func(st models.Story) bool { return st.VisibleAt(asOf) })
}

func (r *storyRepo) ListActiveByUser(ctx context.Context, userID uint, asOf time.Time) ([]models.Story, error) {
	return r.list(ctx, func(st models.Story) bool { return st.UserID == userID && st.VisibleAt(asOf) })
}

func (r *storyRepo) list(ctx context.Context, match func(models.Story) bool) ([]models.Story, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	stories := make([]models.Story, 0)
	for _, st := range r.s.stories {
		if match(st) {
			st.User = r.s.owner(st.UserID)
			stories = append(stories, st)
		}
	}
	newestFirst(stories,
		func(st models.Story) time.Time { return st.CreatedAt },
		func(st models.Story) uint { return st.ID })
	return stories, nil
}

type reelRepo struct{ s *state }

func (r *reelRepo) Create(ctx context.Context, reel *models.Reel) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	reel.ID = r.s.id("reels")
	reel.CreatedAt = r.s.stamp(reel.CreatedAt)
	if reel.Filter == "" {
		reel.Filter = models.DefaultReelFilter
	}
	reel.User = nil
	r.s.reels[reel.ID] = *reel
	return nil
}

func (r *reelRepo) GetByID(ctx context.Context, id uint) (*models.Reel, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	reel, ok := r.s.reels[id]
	if !ok {
		return nil, models.NewNotFoundError("Reel", id)
	}
	reel.User = r.s.owner(reel.UserID)
	return &reel, nil
}

func (r *reelRepo) List(ctx context.Context) ([]models.Reel, error) {
	return r.list(ctx, func(models.Reel) bool { return true })
}

func (r *reelRepo) ListByUser(ctx context.Context, userID uint) ([]models.Reel, error) {
	return r.list(ctx, func(reel models.Reel) bool { return reel.UserID == userID })
}

func (r *reelRepo) list(ctx context.Context, match func(models.Reel) bool) ([]models.Reel, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	reels := make([]models.Reel, 0)
	for _, reel := range r.s.reels {
		if match(reel) {
			reel.User = r.s.owner(reel.UserID)
			reels = append(reels, reel)
		}
	}
	newestFirst(reels,
		func(reel models.Reel) time.Time { return reel.CreatedAt },
		func(reel models.Reel) uint { return reel.ID })
	return reels, nil
}

func (r *reelRepo) ToggleLike(ctx context.Context, userID, reelID uint) (bool, error) {
	if err := ctxErr(ctx); err != nil {
		return false, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	reel, ok := r.s.reels[reelID]
	if !ok {
		return false, models.NewNotFoundError("Reel", reelID)
	}
	for id, l := range r.s.reelLikes {
		if l.UserID == userID && l.ReelID == reelID {
			delete(r.s.reelLikes, id)
			if reel.Likes > 0 {
				reel.Likes--
			}
			r.s.reels[reelID] = reel
			return false, nil
		}
	}
	like := models.ReelLike{ID: r.s.id("reel_likes"), UserID: userID, ReelID: reelID, CreatedAt: r.s.now()}
	r.s.reelLikes[like.ID] = like
	reel.Likes++
	r.s.reels[reelID] = reel
	return true, nil
}

func (r *reelRepo) AddView(ctx context.Context, reelID uint) (int, error) {
	if err := ctxErr(ctx); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	reel, ok := r.s.reels[reelID]
	if !ok {
		return 0, models.NewNotFoundError("Reel", reelID)
	}
	reel.Views++
	r.s.reels[reelID] = reel
	return reel.Views, nil
}
