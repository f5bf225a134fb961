package memory

import (
	"context"
	"time"

	"pixelgram/internal/models"
)

type postRepo struct{ s *state }

func (r *postRepo) Create(ctx context.Context, post *models.Post) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	post.ID = r.s.id("posts")
	post.CreatedAt = r.s.stamp(post.CreatedAt)
	if post.MediaType == "" {
		post.MediaType = models.MediaTypeImage
	}
	post.User = nil
	r.s.posts[post.ID] = *post
	return nil
}

func (r *postRepo) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.posts[id]
	if !ok {
		return nil, models.NewNotFoundError("Post", id)
	}
	p.User = r.s.owner(p.UserID)
	return &p, nil
}

func (r *postRepo) ListAll(ctx context.Context) ([]models.Post, error) {
	return r.list(ctx, func(models.Post) bool { return true })
}

func (r *postRepo) ListByUser(ctx context.Context, userID uint) ([]models.Post, error) {
	return r.list(ctx, func(p models.Post) bool { return p.UserID == userID })
}

func (r *postRepo) list(ctx context.Context, match func(models.Post) bool) ([]models.Post, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	posts := make([]models.Post, 0)
	for _, p := range r.s.posts {
		if match(p) {
			p.User = r.s.owner(p.UserID)
			posts = append(posts, p)
		}
	}
	newestFirst(posts,
		func(p models.Post) time.Time { return p.CreatedAt },
		func(p models.Post) uint { return p.ID })
	return posts, nil
}

func (r *postRepo) Update(ctx context.Context, id uint, patch models.PostPatch) (*models.Post, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.posts[id]
	if !ok {
		return nil, models.NewNotFoundError("Post", id)
	}
	patch.Apply(&p)
	r.s.posts[id] = p
	return &p, nil
}

func (r *postRepo) Count(ctx context.Context) (int64, error) {
	if err := ctxErr(ctx); err != nil {
		return 0, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.posts)), nil
}

type commentRepo struct{ s *state }

func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[comment.PostID]; !ok {
		return models.NewNotFoundError("Post", comment.PostID)
	}
	comment.ID = r.s.id("comments")
	comment.CreatedAt = r.s.stamp(comment.CreatedAt)
	comment.User = nil
	r.s.comments[comment.ID] = *comment
	return nil
}

func (r *commentRepo) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	comments := make([]models.Comment, 0)
	for _, c := range r.s.comments {
		if c.PostID == postID {
			c.User = r.s.owner(c.UserID)
			comments = append(comments, c)
		}
	}
	oldestFirst(comments,
		func(c models.Comment) time.Time { return c.CreatedAt },
		func(c models.Comment) uint { return c.ID })
	return comments, nil
}
