package memory

import (
	"context"
	"sort"
	"time"

	"pixelgram/internal/models"
)

type likeRepo struct{ s *state }

func (r *likeRepo) Create(ctx context.Context, userID, postID uint) (*models.Like, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[postID]; !ok {
		return nil, models.NewNotFoundError("Post", postID)
	}
	if _, ok := r.s.findLike(userID, postID); ok {
		return nil, models.NewConflictError("Post already liked")
	}
	return r.s.insertLike(userID, postID), nil
}

func (r *likeRepo) Delete(ctx context.Context, id uint) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	like, ok := r.s.likes[id]
	if !ok {
		return models.NewNotFoundError("Like", id)
	}
	r.s.removeLike(like)
	return nil
}

func (r *likeRepo) Get(ctx context.Context, userID, postID uint) (*models.Like, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	like, ok := r.s.findLike(userID, postID)
	if !ok {
		return nil, models.NewNotFoundError("Like", postID)
	}
	return &like, nil
}

func (r *likeRepo) Toggle(ctx context.Context, userID, postID uint) (bool, error) {
	if err := ctxErr(ctx); err != nil {
		return false, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[postID]; !ok {
		return false, models.NewNotFoundError("Post", postID)
	}
	if like, ok := r.s.findLike(userID, postID); ok {
		r.s.removeLike(like)
		return false, nil
	}
	r.s.insertLike(userID, postID)
	return true, nil
}

func (s *state) findLike(userID, postID uint) (models.Like, bool) {
	for _, l := range s.likes {
		if l.UserID == userID && l.PostID == postID {
			return l, true
		}
	}
	return models.Like{}, false
}

func (s *state) insertLike(userID, postID uint) *models.Like {
	like := models.Like{ID: s.id("likes"), UserID: userID, PostID: postID, CreatedAt: s.now()}
	s.likes[like.ID] = like
	post := s.posts[postID]
	post.Likes++
	s.posts[postID] = post
	return &like
}

func (s *state) removeLike(like models.Like) {
	delete(s.likes, like.ID)
	if post, ok := s.posts[like.PostID]; ok && post.Likes > 0 {
		post.Likes--
		s.posts[like.PostID] = post
	}
}

type followRepo struct{ s *state }

func (r *followRepo) Create(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.findFollow(followerID, followingID); ok {
		return nil, models.NewConflictError("Already following")
	}
	return r.s.insertFollow(followerID, followingID), nil
}

func (r *followRepo) Delete(ctx context.Context, id uint) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.follows[id]; !ok {
		return models.NewNotFoundError("Follow", id)
	}
	delete(r.s.follows, id)
	return nil
}

func (r *followRepo) Get(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	f, ok := r.s.findFollow(followerID, followingID)
	if !ok {
		return nil, models.NewNotFoundError("Follow", followingID)
	}
	return &f, nil
}

func (r *followRepo) Toggle(ctx context.Context, followerID, followingID uint) (bool, error) {
	if err := ctxErr(ctx); err != nil {
		return false, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if f, ok := r.s.findFollow(followerID, followingID); ok {
		delete(r.s.follows, f.ID)
		return false, nil
	}
	r.s.insertFollow(followerID, followingID)
	return true, nil
}

func (r *followRepo) ListFollowers(ctx context.Context, userID uint) ([]models.User, error) {
	return r.related(ctx, func(f models.Follow) (uint, bool) {
		return f.FollowerID, f.FollowingID == userID
	})
}

func (r *followRepo) ListFollowing(ctx context.Context, userID uint) ([]models.User, error) {
	return r.related(ctx, func(f models.Follow) (uint, bool) {
		return f.FollowingID, f.FollowerID == userID
	})
}

// related collects the users on the other end of matching edges, most recent edge first.
func (r *followRepo) related(ctx context.Context, pick func(models.Follow) (uint, bool)) ([]models.User, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	edges := make([]models.Follow, 0)
	for _, f := range r.s.follows {
		if _, ok := pick(f); ok {
			edges = append(edges, f)
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].ID > edges[j].ID })

	users := make([]models.User, 0, len(edges))
	for _, f := range edges {
		id, _ := pick(f)
		if u, ok := r.s.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (s *state) findFollow(followerID, followingID uint) (models.Follow, bool) {
	for _, f := range s.follows {
		if f.FollowerID == followerID && f.FollowingID == followingID {
			return f, true
		}
	}
	return models.Follow{}, false
}

func (s *state) insertFollow(followerID, followingID uint) *models.Follow {
	f := models.Follow{ID: s.id("follows"), FollowerID: followerID, FollowingID: followingID, CreatedAt: s.now()}
	s.follows[f.ID] = f
	return &f
}

type messageRepo struct{ s *state }

func (r *messageRepo) Create(ctx context.Context, msg *models.Message) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	msg.ID = r.s.id("messages")
	msg.CreatedAt = r.s.stamp(msg.CreatedAt)
	r.s.messages[msg.ID] = *msg
	return nil
}

func (r *messageRepo) ListBetween(ctx context.Context, a, b uint) ([]models.Message, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	msgs := make([]models.Message, 0)
	for _, m := range r.s.messages {
		if (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a) {
			msgs = append(msgs, m)
		}
	}
	oldestFirst(msgs,
		func(m models.Message) time.Time { return m.CreatedAt },
		func(m models.Message) uint { return m.ID })
	return msgs, nil
}
