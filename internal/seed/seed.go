// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"pixelgram/internal/auth"
	"pixelgram/internal/middleware"
	"pixelgram/internal/models"
	"pixelgram/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"gopkg.in/yaml.v3"
)

// MinPosts is the post count at or above which SamplePosts leaves the store alone.
const MinPosts = 10

// DefaultPassword is given to every seeded account.
const DefaultPassword = "password123"

//go:embed fixtures/samples.yml
var samplesYAML []byte

// SampleUser is an account that owns sample content.
type SampleUser struct {
	Username       string `yaml:"username"`
	FullName       string `yaml:"fullName"`
	ProfilePicture string `yaml:"profilePicture"`
}

// SamplePost is a fixture post. DaysAgo back-dates its creation.
type SamplePost struct {
	Author   string `yaml:"author"`
	Caption  string `yaml:"caption"`
	ImageURL string `yaml:"imageUrl"`
	Location string `yaml:"location"`
	DaysAgo  int    `yaml:"daysAgo"`
}

// SampleReel is a fixture reel.
type SampleReel struct {
	Author    string `yaml:"author"`
	Caption   string `yaml:"caption"`
	VideoURL  string `yaml:"videoUrl"`
	Thumbnail string `yaml:"thumbnail"`
	Filter    string `yaml:"filter"`
	AudioID   string `yaml:"audioId"`
	DaysAgo   int    `yaml:"daysAgo"`
}

// Samples is the embedded fixture set.
type Samples struct {
	Users []SampleUser `yaml:"users"`
	Posts []SamplePost `yaml:"posts"`
	Reels []SampleReel `yaml:"reels"`
}

// LoadSamples decodes the embedded fixtures.
func LoadSamples() (*Samples, error) {
	var s Samples
	if err := yaml.Unmarshal(samplesYAML, &s); err != nil {
		return nil, fmt.Errorf("decode sample fixtures: %w", err)
	}
	return &s, nil
}

// Options configure a Seeder.
type Options struct {
	// Password overrides DefaultPassword.
	Password string
	// SkipHashing stores an unusable password digest. Tests use it to avoid
	// paying for the key derivation; seeded users then cannot log in.
	SkipHashing bool
	// RandSeed makes generated content reproducible. Zero picks a random seed.
	RandSeed int64
}

// Seeder writes sample and generated content through a repository.Store, so
// it works against the gorm and memory stores alike.
type Seeder struct {
	store *repository.Store
	opts  Options
	faker *gofakeit.Faker
	now   func() time.Time

	digest string
}

// NewSeeder creates a Seeder bound to store.
func NewSeeder(store *repository.Store, opts Options) *Seeder {
	if opts.Password == "" {
		opts.Password = DefaultPassword
	}
	return &Seeder{
		store: store,
		opts:  opts,
		faker: gofakeit.New(opts.RandSeed),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Result describes what SamplePosts did.
type Result struct {
	Seeded   bool
	Existing int64
	Posts    []models.Post
	Reels    []models.Reel
}

// SamplePosts loads the fixture users, posts and reels when the store holds
// fewer than MinPosts posts. Likes on seeded posts come from real Like rows so
// the counters stay consistent.
func (s *Seeder) SamplePosts(ctx context.Context) (*Result, error) {
	existing, err := s.store.Posts.Count(ctx)
	if err != nil {
		return nil, err
	}
	if existing >= MinPosts {
		return &Result{Existing: existing}, nil
	}

	samples, err := LoadSamples()
	if err != nil {
		return nil, err
	}

	authors, err := s.sampleUsers(ctx, samples.Users)
	if err != nil {
		return nil, err
	}
	likers := make([]uint, 0, len(authors))
	for _, u := range samples.Users {
		likers = append(likers, authors[u.Username].ID)
	}

	res := &Result{Seeded: true, Existing: existing}
	for _, sp := range samples.Posts {
		author, ok := authors[sp.Author]
		if !ok {
			return nil, fmt.Errorf("sample post references unknown author %q", sp.Author)
		}
		post := &models.Post{
			UserID:    author.ID,
			Caption:   sp.Caption,
			ImageURL:  sp.ImageURL,
			MediaType: models.MediaTypeImage,
			Location:  sp.Location,
			CreatedAt: s.daysAgo(sp.DaysAgo),
		}
		if err := s.store.Posts.Create(ctx, post); err != nil {
			return nil, fmt.Errorf("create sample post: %w", err)
		}
		if err := s.likePost(ctx, post.ID, likers); err != nil {
			return nil, err
		}
		created, err := s.store.Posts.GetByID(ctx, post.ID)
		if err != nil {
			return nil, err
		}
		res.Posts = append(res.Posts, *created)
	}

	reels, err := s.sampleReels(ctx, samples.Reels, authors, likers)
	if err != nil {
		return nil, err
	}
	res.Reels = reels

	middleware.Logger.InfoContext(ctx, "sample content seeded",
		slog.Int("posts", len(res.Posts)),
		slog.Int("reels", len(res.Reels)),
	)
	return res, nil
}

// sampleUsers returns the fixture accounts keyed by username, creating the
// ones that do not exist yet.
func (s *Seeder) sampleUsers(ctx context.Context, users []SampleUser) (map[string]*models.User, error) {
	out := make(map[string]*models.User, len(users))
	for _, su := range users {
		u, err := s.store.Users.GetByUsername(ctx, su.Username)
		switch {
		case err == nil:
		case models.IsNotFound(err):
			u = &models.User{
				Username:       su.Username,
				FullName:       su.FullName,
				ProfilePicture: su.ProfilePicture,
			}
			if err := s.createUser(ctx, u); err != nil {
				return nil, err
			}
		default:
			return nil, err
		}
		out[su.Username] = u
	}
	return out, nil
}

// sampleReels seeds the fixture reels once; a store that already has reels is left alone.
func (s *Seeder) sampleReels(ctx context.Context, reels []SampleReel, authors map[string]*models.User, likers []uint) ([]models.Reel, error) {
	current, err := s.store.Reels.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(current) > 0 {
		return nil, nil
	}

	out := make([]models.Reel, 0, len(reels))
	for _, sr := range reels {
		author, ok := authors[sr.Author]
		if !ok {
			return nil, fmt.Errorf("sample reel references unknown author %q", sr.Author)
		}
		reel := &models.Reel{
			UserID:     author.ID,
			VideoURL:   sr.VideoURL,
			Thumbnail:  sr.Thumbnail,
			Caption:    sr.Caption,
			Filter:     sr.Filter,
			AudioTrack: models.AudioTrackName(sr.AudioID),
			CreatedAt:  s.daysAgo(sr.DaysAgo),
		}
		if err := s.store.Reels.Create(ctx, reel); err != nil {
			return nil, fmt.Errorf("create sample reel: %w", err)
		}
		for _, uid := range s.pick(likers) {
			if _, err := s.store.Reels.ToggleLike(ctx, uid, reel.ID); err != nil {
				return nil, err
			}
		}
		for i := s.faker.Number(0, 20); i > 0; i-- {
			if _, err := s.store.Reels.AddView(ctx, reel.ID); err != nil {
				return nil, err
			}
		}
		created, err := s.store.Reels.GetByID(ctx, reel.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *created)
	}
	return out, nil
}

func (s *Seeder) likePost(ctx context.Context, postID uint, candidates []uint) error {
	for _, uid := range s.pick(candidates) {
		if _, err := s.store.Likes.Create(ctx, uid, postID); err != nil && !models.IsConflict(err) {
			return fmt.Errorf("like sample post: %w", err)
		}
	}
	return nil
}

// pick returns a random subset of ids.
func (s *Seeder) pick(ids []uint) []uint {
	if len(ids) == 0 {
		return nil
	}
	shuffled := append([]uint(nil), ids...)
	s.faker.ShuffleAnySlice(shuffled)
	return shuffled[:s.faker.Number(0, len(shuffled))]
}

func (s *Seeder) createUser(ctx context.Context, u *models.User) error {
	digest, err := s.passwordDigest()
	if err != nil {
		return err
	}
	u.Password = digest
	if err := s.store.Users.Create(ctx, u); err != nil {
		return fmt.Errorf("create user %s: %w", u.Username, err)
	}
	return nil
}

// passwordDigest hashes the seed password once and reuses it for every account.
func (s *Seeder) passwordDigest() (string, error) {
	if s.digest != "" {
		return s.digest, nil
	}
	if s.opts.SkipHashing {
		s.digest = "unusable.seed"
		return s.digest, nil
	}
	digest, err := auth.HashPassword(s.opts.Password)
	if err != nil {
		return "", fmt.Errorf("hash seed password: %w", err)
	}
	s.digest = digest
	return digest, nil
}

func (s *Seeder) daysAgo(days int) time.Time {
	return s.now().Add(-time.Duration(days) * 24 * time.Hour)
}
