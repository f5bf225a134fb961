package repository

import (
	"context"
	"sync"
	"testing"

	"pixelgram/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func postLikes(t *testing.T, db *gorm.DB, postID uint) (counter int, edges int64) {
	t.Helper()
	var post models.Post
	require.NoError(t, db.First(&post, postID).Error)
	require.NoError(t, db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&edges).Error)
	return post.Likes, edges
}

func TestLikeRepository_ToggleMovesCounterWithEdge(t *testing.T) {
	db := newTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	post := seedPost(t, db, alice.ID)

	liked, err := repo.Toggle(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	counter, edges := postLikes(t, db, post.ID)
	assert.Equal(t, 1, counter)
	assert.Equal(t, int64(1), edges)

	liked, err = repo.Toggle(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = repo.Toggle(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)
	counter, edges = postLikes(t, db, post.ID)
	assert.Equal(t, 1, counter)
	assert.Equal(t, int64(1), edges)

	_, err = repo.Get(ctx, bob.ID, post.ID)
	assert.True(t, models.IsNotFound(err))
}

func TestLikeRepository_ToggleUnknownPost(t *testing.T) {
	db := newTestDB(t)
	repo := NewLikeRepository(db)
	alice := seedUser(t, db, "alice")

	_, err := repo.Toggle(context.Background(), alice.ID, 404)
	assert.True(t, models.IsNotFound(err))
}

func TestLikeRepository_ConcurrentTogglesKeepCounterConsistent(t *testing.T) {
	db := newTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	post := seedPost(t, db, alice.ID)

	const toggles = 9
	var wg sync.WaitGroup
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Toggle(ctx, alice.ID, post.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	counter, edges := postLikes(t, db, post.ID)
	assert.Equal(t, int64(1), edges)
	assert.Equal(t, 1, counter)
}

func TestLikeRepository_CreateAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	post := seedPost(t, db, alice.ID)

	like, err := repo.Create(ctx, alice.ID, post.ID)
	require.NoError(t, err)

	_, err = repo.Create(ctx, alice.ID, post.ID)
	assert.True(t, models.IsConflict(err))

	counter, _ := postLikes(t, db, post.ID)
	assert.Equal(t, 1, counter)

	// Drift the counter to zero; the decrement must not go negative.
	require.NoError(t, db.Model(&models.Post{}).Where("id = ?", post.ID).UpdateColumn("likes", 0).Error)
	require.NoError(t, repo.Delete(ctx, like.ID))
	counter, edges := postLikes(t, db, post.ID)
	assert.Equal(t, 0, counter)
	assert.Equal(t, int64(0), edges)

	assert.True(t, models.IsNotFound(repo.Delete(ctx, like.ID)))
}

func TestToggleEdge_WithoutCounter(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	post := seedPost(t, db, alice.ID)

	toggle := func() bool {
		var on bool
		require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
			var err error
			on, err = toggleEdge(tx, nil, 0, "",
				func(tx *gorm.DB) *gorm.DB {
					return tx.Where("user_id = ? AND post_id = ?", alice.ID, post.ID).Delete(&models.Like{})
				},
				func(tx *gorm.DB) *gorm.DB {
					return tx.Clauses(clause.OnConflict{DoNothing: true}).
						Create(&models.Like{UserID: alice.ID, PostID: post.ID})
				},
			)
			return err
		}))
		return on
	}

	assert.True(t, toggle())
	counter, edges := postLikes(t, db, post.ID)
	assert.Equal(t, 0, counter)
	assert.Equal(t, int64(1), edges)

	assert.False(t, toggle())
	counter, edges = postLikes(t, db, post.ID)
	assert.Equal(t, 0, counter)
	assert.Equal(t, int64(0), edges)
}
