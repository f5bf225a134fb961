package server

import (
	"net/http"
	"strings"
	"testing"

	"pixelgram/internal/models"
	"pixelgram/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPost(t *testing.T, app *fiber.App, cookie *http.Cookie, caption string) models.Post {
	t.Helper()
	resp := doMultipart(t, app, http.MethodPost, "/api/posts",
		map[string]string{"caption": caption, "location": "Kochi, India"}, cookie,
		testutil.FormFile{Field: "image", Filename: "Photo.PNG", Content: testutil.TinyPNG(t, 4, 4)},
	)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var post models.Post
	decode(t, resp, &post)
	return post
}

func TestPostLikeUnlike(t *testing.T) {
	_, app := newTestServer(t, nil)
	aliceID, cookie := register(t, app, "alice")

	post := createPost(t, app, cookie, "sunset")
	assert.Equal(t, aliceID, post.UserID)
	assert.Equal(t, models.MediaTypeImage, post.MediaType)
	assert.True(t, strings.HasPrefix(post.ImageURL, "/uploads/image-"), post.ImageURL)
	assert.True(t, strings.HasSuffix(post.ImageURL, ".png"), post.ImageURL)
	assert.Zero(t, post.Likes)

	likes := func() int {
		resp := doJSON(t, app, http.MethodGet, "/api/posts", nil, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var posts []models.Post
		decode(t, resp, &posts)
		require.Len(t, posts, 1)
		return posts[0].Likes
	}
	toggle := func() bool {
		resp := doJSON(t, app, http.MethodPost, "/api/posts/"+itoa(post.ID)+"/like", nil, cookie)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var body struct {
			Liked bool `json:"liked"`
		}
		decode(t, resp, &body)
		return body.Liked
	}

	assert.True(t, toggle())
	assert.Equal(t, 1, likes())
	assert.False(t, toggle())
	assert.Equal(t, 0, likes())
}

func TestCreatePost_Rejections(t *testing.T) {
	_, app := newTestServer(t, nil)
	_, cookie := register(t, app, "alice")

	resp := doMultipart(t, app, http.MethodPost, "/api/posts", map[string]string{"caption": "no file"}, cookie)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var body models.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "No media file uploaded", body.Error)

	resp = doMultipart(t, app, http.MethodPost, "/api/posts", nil, cookie,
		testutil.FormFile{Field: "image", Filename: "notes.txt", Content: []byte("hello")},
	)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doMultipart(t, app, http.MethodPost, "/api/posts", nil, cookie,
		testutil.FormFile{Field: "image", Filename: "fake.png", Content: []byte("not really a png")},
	)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreatePost_VideoField(t *testing.T) {
	_, app := newTestServer(t, nil)
	_, cookie := register(t, app, "alice")

	resp := doMultipart(t, app, http.MethodPost, "/api/posts", map[string]string{"caption": "clip"}, cookie,
		testutil.FormFile{Field: "video", Filename: "clip.mp4", Content: []byte("\x00\x00\x00\x18ftypmp42")},
	)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var post models.Post
	decode(t, resp, &post)
	assert.Equal(t, models.MediaTypeVideo, post.MediaType)
}

func TestLikePost_Errors(t *testing.T) {
	_, app := newTestServer(t, nil)
	_, cookie := register(t, app, "alice")

	resp := doJSON(t, app, http.MethodPost, "/api/posts/999/like", nil, cookie)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/posts/abc/like", nil, cookie)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestComments(t *testing.T) {
	_, app := newTestServer(t, nil)
	_, alice := register(t, app, "alice")
	bobID, bob := register(t, app, "bob_b")
	post := createPost(t, app, alice, "lunch")
	path := "/api/posts/" + itoa(post.ID) + "/comments"

	for _, content := range []string{"first", "second"} {
		resp := doJSON(t, app, http.MethodPost, path, map[string]string{"content": content}, bob)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, http.MethodPost, path, map[string]string{"content": "  "}, bob)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, path, nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var comments []models.Comment
	decode(t, resp, &comments)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "second", comments[1].Content)
	assert.Equal(t, bobID, comments[0].UserID)

	resp = doJSON(t, app, http.MethodGet, "/api/posts/999/comments", nil, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
