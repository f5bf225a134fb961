package seed

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"pixelgram/internal/middleware"
	"pixelgram/internal/models"
)

var usernameUnsafe = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// MeshSummary counts what SocialMesh created.
type MeshSummary struct {
	Users    int
	Follows  int
	Posts    int
	Comments int
	Likes    int
	Stories  int
	Messages int
}

// SocialMesh generates numUsers accounts with gofakeit and wires them into a
// small social graph: follows, posts with comments and likes, live stories and
// a few direct-message threads.
func (s *Seeder) SocialMesh(ctx context.Context, numUsers, numPosts int) (*MeshSummary, error) {
	if numUsers < 2 {
		return nil, fmt.Errorf("social mesh needs at least 2 users, got %d", numUsers)
	}
	sum := &MeshSummary{}

	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		u := s.BuildUser(i)
		if err := s.createUser(ctx, u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	sum.Users = len(users)

	ids := make([]uint, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}

	for _, u := range users {
		for _, target := range s.pick(ids) {
			if target == u.ID {
				continue
			}
			if _, err := s.store.Follows.Create(ctx, u.ID, target); err != nil {
				if models.IsConflict(err) {
					continue
				}
				return nil, fmt.Errorf("create follow: %w", err)
			}
			sum.Follows++
		}
	}

	for i := 0; i < numPosts; i++ {
		author := users[s.faker.Number(0, len(users)-1)]
		post := s.BuildPost(author)
		if err := s.store.Posts.Create(ctx, post); err != nil {
			return nil, fmt.Errorf("create post: %w", err)
		}
		sum.Posts++

		for c := s.faker.Number(0, 3); c > 0; c-- {
			commenter := users[s.faker.Number(0, len(users)-1)]
			comment := &models.Comment{
				PostID:    post.ID,
				UserID:    commenter.ID,
				Content:   s.faker.Sentence(s.faker.Number(3, 12)),
				CreatedAt: post.CreatedAt.Add(time.Duration(s.faker.Number(1, 600)) * time.Minute),
			}
			if err := s.store.Comments.Create(ctx, comment); err != nil {
				return nil, fmt.Errorf("create comment: %w", err)
			}
			sum.Comments++
		}

		for _, uid := range s.pick(ids) {
			if _, err := s.store.Likes.Create(ctx, uid, post.ID); err != nil {
				if models.IsConflict(err) {
					continue
				}
				return nil, fmt.Errorf("create like: %w", err)
			}
			sum.Likes++
		}
	}

	for _, u := range users {
		if !s.faker.Bool() {
			continue
		}
		story := &models.Story{
			UserID:    u.ID,
			ImageURL:  fmt.Sprintf("https://picsum.photos/seed/story-%s/1080/1920", s.faker.UUID()),
			CreatedAt: s.now().Add(-time.Duration(s.faker.Number(1, 1200)) * time.Minute),
		}
		if err := s.store.Stories.Create(ctx, story); err != nil {
			return nil, fmt.Errorf("create story: %w", err)
		}
		sum.Stories++
	}

	for i := 0; i+1 < len(users); i += 2 {
		a, b := users[i], users[i+1]
		start := s.now().Add(-time.Duration(s.faker.Number(2, 72)) * time.Hour)
		count := s.faker.Number(1, 5)
		for m := 0; m < count; m++ {
			from, to := a, b
			if m%2 == 1 {
				from, to = b, a
			}
			msg := &models.Message{
				SenderID:   from.ID,
				ReceiverID: to.ID,
				Content:    s.faker.Sentence(s.faker.Number(2, 10)),
				CreatedAt:  start.Add(time.Duration(m) * time.Minute),
			}
			if err := s.store.Messages.Create(ctx, msg); err != nil {
				return nil, fmt.Errorf("create message: %w", err)
			}
			sum.Messages++
		}
	}

	middleware.Logger.InfoContext(ctx, "social mesh seeded",
		slog.Int("users", sum.Users),
		slog.Int("follows", sum.Follows),
		slog.Int("posts", sum.Posts),
		slog.Int("comments", sum.Comments),
		slog.Int("likes", sum.Likes),
		slog.Int("stories", sum.Stories),
		slog.Int("messages", sum.Messages),
	)
	return sum, nil
}

// BuildUser returns an unsaved account with a unique, valid username.
func (s *Seeder) BuildUser(n int) *models.User {
	first := s.faker.FirstName()
	last := s.faker.LastName()
	suffix := fmt.Sprintf("_%d", n)
	base := strings.ToLower(usernameUnsafe.ReplaceAllString(first+"_"+last, ""))
	if limit := 30 - len(suffix); len(base) > limit {
		base = base[:limit]
	}
	if len(base) < 2 {
		base = "user"
	}
	return &models.User{
		Username:       base + suffix,
		FullName:       first + " " + last,
		Bio:            s.faker.Sentence(s.faker.Number(4, 14)),
		Email:          strings.ToLower(fmt.Sprintf("%s%s@example.com", base, suffix)),
		ProfilePicture: fmt.Sprintf("https://picsum.photos/seed/avatar-%s/150/150", s.faker.UUID()),
	}
}

// BuildPost returns an unsaved image post by author, back-dated up to 90 days.
func (s *Seeder) BuildPost(author *models.User) *models.Post {
	age := time.Duration(s.faker.Number(0, 90*24*60)) * time.Minute
	return &models.Post{
		UserID:    author.ID,
		Caption:   fmt.Sprintf("%s #%s", s.faker.Sentence(s.faker.Number(4, 16)), strings.ToLower(usernameUnsafe.ReplaceAllString(s.faker.Hobby(), ""))),
		ImageURL:  fmt.Sprintf("https://picsum.photos/seed/%s/800/800", s.faker.UUID()),
		MediaType: models.MediaTypeImage,
		Location:  fmt.Sprintf("%s, %s", s.faker.City(), s.faker.Country()),
		CreatedAt: s.now().Add(-age),
	}
}
