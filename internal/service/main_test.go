package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"pixelgram/internal/cache"
	"pixelgram/internal/models"
	"pixelgram/internal/repository"
	"pixelgram/internal/repository/memory"
	"pixelgram/internal/session"
	"pixelgram/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends runs a test against both repository.Store implementations.
func backends(t *testing.T, fn func(t *testing.T, store *repository.Store)) {
	t.Run("memory", func(t *testing.T) { fn(t, memory.NewStore()) })
	t.Run("sqlite", func(t *testing.T) { fn(t, testutil.NewSQLiteStore(t)) })
}

func newAuthService(store *repository.Store) *AuthService {
	return NewAuthService(store.Users, session.NewManager(session.NewMemoryStore(), time.Hour, nil), cache.NewJSON(nil))
}

func createUser(t *testing.T, store *repository.Store, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Password: "x.y", FullName: username + " Example"}
	require.NoError(t, store.Users.Create(context.Background(), u))
	return u
}

func assertCode(t *testing.T, code string, err error) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, models.ErrorCode(err), "error: %v", err)
}

// recordingDiscarder remembers discarded URLs.
type recordingDiscarder struct {
	mu   sync.Mutex
	urls []string
}

func (d *recordingDiscarder) Discard(_ context.Context, url string) {
	if url == "" {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.urls = append(d.urls, url)
}

func (d *recordingDiscarder) Discarded() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.urls...)
}

// userRepoStub lets tests inject user repository failures.
type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	listFn          func(context.Context) ([]models.User, error)
	updateFn        func(context.Context, uint, models.UserPatch) (*models.User, error)
	searchFn        func(context.Context, string) ([]models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, u *models.User) error { return s.createFn(ctx, u) }
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, name string) (*models.User, error) {
	return s.getByUsernameFn(ctx, name)
}
func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) { return s.listFn(ctx) }
func (s *userRepoStub) Update(ctx context.Context, id uint, p models.UserPatch) (*models.User, error) {
	return s.updateFn(ctx, id, p)
}
func (s *userRepoStub) Search(ctx context.Context, q string) ([]models.User, error) {
	return s.searchFn(ctx, q)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:        func(context.Context, *models.User) error { return nil },
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return nil, models.NewNotFoundError("User", id) },
		getByUsernameFn: func(_ context.Context, n string) (*models.User, error) { return nil, models.NewNotFoundError("User", n) },
		listFn:          func(context.Context) ([]models.User, error) { return nil, nil },
		updateFn:        func(_ context.Context, id uint, _ models.UserPatch) (*models.User, error) { return &models.User{ID: id}, nil },
		searchFn:        func(context.Context, string) ([]models.User, error) { return nil, nil },
	}
}
