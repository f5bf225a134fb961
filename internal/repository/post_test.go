package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"pixelgram/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := &models.Post{UserID: 1, ImageURL: "/uploads/image-1.png", Caption: "Content"}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "posts"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Create(ctx, post)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), post.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_FeedsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, owner := range []uint{alice.ID, bob.ID, alice.ID} {
		p := &models.Post{UserID: owner, ImageURL: "/uploads/x.png", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, repo.Create(ctx, p))
	}

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, uint(3), all[0].ID)
	assert.Equal(t, uint(1), all[2].ID)
	require.NotNil(t, all[0].User)
	assert.Equal(t, "alice", all[0].User.Username)
	assert.Equal(t, models.MediaTypeImage, all[0].MediaType)

	mine, err := repo.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, uint(3), mine[0].ID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestPostRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	post := seedPost(t, db, alice.ID)

	caption := "edited"
	updated, err := repo.Update(ctx, post.ID, models.PostPatch{Caption: &caption})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Caption)

	_, err = repo.Update(ctx, 404, models.PostPatch{Caption: &caption})
	assert.True(t, models.IsNotFound(err))
}
