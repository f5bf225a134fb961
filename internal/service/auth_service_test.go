package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pixelgram/internal/cache"
	"pixelgram/internal/models"
	"pixelgram/internal/repository"
	"pixelgram/internal/session"
	"pixelgram/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RegisterLoginCurrentUser(t *testing.T) {
	backends(t, func(t *testing.T, store *repository.Store) {
		svc := newAuthService(store)
		ctx := context.Background()

		user, sess, err := svc.Register(ctx, validation.Register{Username: "alice", Password: "secret1", FullName: "Alice"})
		require.NoError(t, err)
		require.NotNil(t, sess)
		assert.NotZero(t, user.ID)
		assert.NotEqual(t, "secret1", user.Password)

		current, err := svc.CurrentUser(ctx, sess.ID)
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, "alice", current.Username)

		_, _, err = svc.Login(ctx, validation.Login{Username: "alice", Password: "wrong"})
		assertCode(t, models.CodeUnauthorized, err)

		loggedIn, loginSess, err := svc.Login(ctx, validation.Login{Username: "alice", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, user.ID, loggedIn.ID)
		assert.NotEqual(t, sess.ID, loginSess.ID)

		require.NoError(t, svc.Logout(ctx, loginSess.ID))
		current, err = svc.CurrentUser(ctx, loginSess.ID)
		require.NoError(t, err)
		assert.Nil(t, current)

		current, err = svc.CurrentUser(ctx, "")
		require.NoError(t, err)
		assert.Nil(t, current)
	})
}

func TestAuthService_DuplicateRegistration(t *testing.T) {
	backends(t, func(t *testing.T, store *repository.Store) {
		svc := newAuthService(store)
		ctx := context.Background()

		_, _, err := svc.Register(ctx, validation.Register{Username: "alice", Password: "secret1"})
		require.NoError(t, err)

		_, _, err = svc.Register(ctx, validation.Register{Username: "alice", Password: "other1"})
		assertCode(t, models.CodeConflict, err)
		assert.Equal(t, "Username already exists", err.Error())

		// The first password still works.
		_, _, err = svc.Login(ctx, validation.Login{Username: "alice", Password: "secret1"})
		assert.NoError(t, err)
	})
}

func TestAuthService_ConcurrentDuplicateRegistration(t *testing.T) {
	backends(t, func(t *testing.T, store *repository.Store) {
		svc := newAuthService(store)
		const attempts = 6

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
			conflicts int
		)
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _, err := svc.Register(context.Background(), validation.Register{Username: "racer", Password: "secret1"})
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					successes++
				case models.IsConflict(err):
					conflicts++
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, successes)
		assert.Equal(t, attempts-1, conflicts)

		users, err := store.Users.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})
}

func TestAuthService_LoginFailuresAreUniform(t *testing.T) {
	backends(t, func(t *testing.T, store *repository.Store) {
		svc := newAuthService(store)
		ctx := context.Background()
		_, _, err := svc.Register(ctx, validation.Register{Username: "alice", Password: "secret1"})
		require.NoError(t, err)

		_, _, unknown := svc.Login(ctx, validation.Login{Username: "nobody", Password: "secret1"})
		_, _, wrong := svc.Login(ctx, validation.Login{Username: "alice", Password: "nope"})

		assertCode(t, models.CodeUnauthorized, unknown)
		assertCode(t, models.CodeUnauthorized, wrong)
		assert.Equal(t, unknown.Error(), wrong.Error())
		assert.Equal(t, "Authentication failed", unknown.Error())
	})
}

func TestAuthService_StorageErrorsAreNotAuthFailures(t *testing.T) {
	t.Parallel()
	storeErr := models.NewStorageError("get user", errors.New("connection reset"))
	repo := noopUserRepo()
	repo.getByUsernameFn = func(context.Context, string) (*models.User, error) { return nil, storeErr }

	svc := NewAuthService(repo, session.NewManager(session.NewMemoryStore(), time.Hour, nil), cache.NewJSON(nil))

	_, _, err := svc.Login(context.Background(), validation.Login{Username: "alice", Password: "x"})
	assertCode(t, models.CodeStorage, err)

	_, _, err = svc.Register(context.Background(), validation.Register{Username: "alice", Password: "secret1"})
	assertCode(t, models.CodeStorage, err)
}

func TestAuthService_CurrentUserDeleted(t *testing.T) {
	t.Parallel()
	repo := noopUserRepo()
	mgr := session.NewManager(session.NewMemoryStore(), time.Hour, nil)
	svc := NewAuthService(repo, mgr, cache.NewJSON(nil))

	sess, err := mgr.Issue(context.Background(), 99)
	require.NoError(t, err)

	user, err := svc.CurrentUser(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Nil(t, user)
}
