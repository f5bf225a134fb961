package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name string `json:"name"`
}

func TestJSON_GetOrLoad(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewJSON(rdb)
	ctx := context.Background()

	var loads int32
	load := func(context.Context) (any, error) {
		atomic.AddInt32(&loads, 1)
		return []entry{{Name: "alice"}}, nil
	}

	var got []entry
	require.NoError(t, c.GetOrLoad(ctx, DirectoryKey, time.Minute, &got, load))
	assert.Equal(t, []entry{{Name: "alice"}}, got)
	assert.True(t, mr.Exists(DirectoryKey))

	got = nil
	require.NoError(t, c.GetOrLoad(ctx, DirectoryKey, time.Minute, &got, load))
	assert.Equal(t, "alice", got[0].Name)
	assert.Equal(t, int32(1), atomic.LoadInt32(&loads))

	c.Invalidate(ctx, DirectoryKey)
	assert.False(t, mr.Exists(DirectoryKey))

	mr.FastForward(2 * time.Minute)
	require.NoError(t, c.GetOrLoad(ctx, DirectoryKey, time.Minute, &got, load))
	assert.Equal(t, int32(2), atomic.LoadInt32(&loads))
}

func TestJSON_NilClientCollapsesConcurrentLoads(t *testing.T) {
	c := NewJSON(nil)
	ctx := context.Background()

	release := make(chan struct{})
	var loads int32
	load := func(context.Context) (any, error) {
		atomic.AddInt32(&loads, 1)
		<-release
		return entry{Name: "x"}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var e entry
			assert.NoError(t, c.GetOrLoad(ctx, "k", time.Minute, &e, load))
			assert.Equal(t, "x", e.Name)
		}()
	}
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&loads))
}

func TestJSON_LoadErrorIsReturned(t *testing.T) {
	c := NewJSON(nil)
	var e entry
	err := c.GetOrLoad(context.Background(), "k", time.Minute, &e, func(context.Context) (any, error) {
		return nil, errors.New("db down")
	})
	assert.EqualError(t, err, "db down")
}

func TestNewClient(t *testing.T) {
	c, err := NewClient("redis://localhost:6379/2")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Options().DB)

	_, err = NewClient("redis://%zz")
	assert.Error(t, err)

	assert.Nil(t, Connect(context.Background(), ""))
}
