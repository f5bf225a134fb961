package session

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]Store {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return map[string]Store{
		"memory": NewMemoryStore(),
		"redis":  NewRedisStore(rdb),
	}
}

func TestManager_IssueResolveRevoke(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			m := NewManager(store, 0, nil)
			ctx := context.Background()
			assert.Equal(t, DefaultTTL, m.TTL())

			s, err := m.Issue(ctx, 42)
			require.NoError(t, err)
			raw, err := base64.RawURLEncoding.DecodeString(s.ID)
			require.NoError(t, err)
			assert.Len(t, raw, 32)
			assert.Equal(t, s.CreatedAt.Add(DefaultTTL), s.ExpiresAt)

			got, err := m.Resolve(ctx, s.ID)
			require.NoError(t, err)
			assert.Equal(t, uint(42), got.UserID)

			uid, ok := m.ResolveUserID(ctx, s.ID)
			assert.True(t, ok)
			assert.Equal(t, uint(42), uid)

			require.NoError(t, m.Revoke(ctx, s.ID))
			_, err = m.Resolve(ctx, s.ID)
			assert.ErrorIs(t, err, ErrNotFound)

			_, err = m.Resolve(ctx, "")
			assert.ErrorIs(t, err, ErrNotFound)
			_, ok = m.ResolveUserID(ctx, "unknown")
			assert.False(t, ok)
		})
	}
}

func TestManager_DistinctIDs(t *testing.T) {
	m := NewManager(NewMemoryStore(), time.Hour, nil)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s, err := m.Issue(context.Background(), 1)
		require.NoError(t, err)
		assert.False(t, seen[s.ID])
		seen[s.ID] = true
	}
}

func TestManager_ExpiryIsNotSliding(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store, time.Hour, nil)
	ctx := context.Background()

	clock := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return clock }
	store.now = func() time.Time { return clock }

	s, err := m.Issue(ctx, 7)
	require.NoError(t, err)

	clock = clock.Add(59 * time.Minute)
	_, err = m.Resolve(ctx, s.ID)
	require.NoError(t, err)

	clock = clock.Add(time.Minute)
	_, err = m.Resolve(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Saving another session sweeps the expired one.
	_, err = m.Issue(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestRedisStore_KeyAndTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	m := NewManager(NewRedisStore(rdb), 2*time.Hour, nil)
	s, err := m.Issue(context.Background(), 3)
	require.NoError(t, err)

	key := "session:" + s.ID
	assert.True(t, mr.Exists(key))
	ttl := mr.TTL(key)
	assert.InDelta(t, (2 * time.Hour).Seconds(), ttl.Seconds(), 5)

	mr.FastForward(2*time.Hour + time.Second)
	_, err = m.Resolve(context.Background(), s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ConcurrentReaders(t *testing.T) {
	m := NewManager(NewMemoryStore(), time.Hour, nil)
	ctx := context.Background()
	s, err := m.Issue(ctx, 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Resolve(ctx, s.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

type brokenStore struct{ MemoryStore }

func (*brokenStore) Get(context.Context, string) (*Session, error) {
	return nil, errors.New("connection reset")
}

func TestManager_ResolveUserIDLogsStoreFailures(t *testing.T) {
	buf := &bytes.Buffer{}
	m := NewManager(&brokenStore{}, time.Hour, slog.New(slog.NewTextHandler(buf, nil)))

	_, ok := m.ResolveUserID(context.Background(), "sid")
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "session lookup failed")
	assert.Contains(t, buf.String(), "connection reset")

	buf.Reset()
	m = NewManager(NewMemoryStore(), time.Hour, slog.New(slog.NewTextHandler(buf, nil)))
	_, ok = m.ResolveUserID(context.Background(), "missing")
	assert.False(t, ok)
	assert.Empty(t, buf.String())
}
