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

func TestGetUser_ByIDOrUsername(t *testing.T) {
	_, app := newTestServer(t, nil)
	aliceID, _ := register(t, app, "alice")

	for _, key := range []string{itoa(aliceID), "alice"} {
		resp := doJSON(t, app, http.MethodGet, "/api/users/"+key, nil, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var u models.User
		decode(t, resp, &u)
		assert.Equal(t, aliceID, u.ID)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/users/ghost", nil, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/users/ghost/posts", nil, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDirectoryAndSearch(t *testing.T) {
	_, app := newTestServer(t, nil)
	register(t, app, "alice")
	register(t, app, "bob_b")
	register(t, app, "malice")

	resp := doJSON(t, app, http.MethodGet, "/api/users/all", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var all []models.User
	decode(t, resp, &all)
	assert.Len(t, all, 3)

	resp = doJSON(t, app, http.MethodGet, "/api/users/search/lic", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var found []models.User
	decode(t, resp, &found)
	names := make([]string, 0, len(found))
	for _, u := range found {
		names = append(names, u.Username)
	}
	assert.ElementsMatch(t, []string{"alice", "malice"}, names)

	resp = doJSON(t, app, http.MethodGet, "/api/users/search/"+strings.Repeat("x", 101), nil, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestToggleFollow(t *testing.T) {
	_, app := newTestServer(t, nil)
	aliceID, alice := register(t, app, "alice")
	register(t, app, "bob_b")

	follow := func(username string) *http.Response {
		return doJSON(t, app, http.MethodPost, "/api/users/"+username+"/follow", nil, alice)
	}

	resp := follow("alice")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var errBody models.ErrorResponse
	decode(t, resp, &errBody)
	assert.Equal(t, "Cannot follow yourself", errBody.Error)

	resp = follow("ghost")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	for _, want := range []bool{true, false, true} {
		resp = follow("bob_b")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var body struct {
			Following bool `json:"following"`
		}
		decode(t, resp, &body)
		assert.Equal(t, want, body.Following)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/users/bob_b/followers", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var followers []models.User
	decode(t, resp, &followers)
	require.Len(t, followers, 1)
	assert.Equal(t, aliceID, followers[0].ID)

	resp = doJSON(t, app, http.MethodGet, "/api/users/alice/following", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var following []models.User
	decode(t, resp, &following)
	require.Len(t, following, 1)
	assert.Equal(t, "bob_b", following[0].Username)
}

func TestUpdateProfile(t *testing.T) {
	_, app := newTestServer(t, nil)
	aliceID, alice := register(t, app, "alice")
	bobID, _ := register(t, app, "bob_b")

	t.Run("missing user is reported before ownership", func(t *testing.T) {
		resp := doMultipart(t, app, http.MethodPut, "/api/users/999", map[string]string{"bio": "x"}, alice)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("other user's profile is forbidden", func(t *testing.T) {
		resp := doMultipart(t, app, http.MethodPut, "/api/users/"+itoa(bobID), map[string]string{"bio": "x"}, alice)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		var body models.ErrorResponse
		decode(t, resp, &body)
		assert.Equal(t, "You can only update your own profile", body.Error)
	})

	t.Run("own profile with picture", func(t *testing.T) {
		resp := doMultipart(t, app, http.MethodPut, "/api/users/"+itoa(aliceID),
			map[string]string{"bio": "Tea & travel", "fullName": "Alice A.", "username": ""}, alice,
			testutil.FormFile{Field: "profilePicture", Filename: "me.png", Content: testutil.TinyPNG(t, 8, 8)},
		)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var u models.User
		decode(t, resp, &u)
		assert.Equal(t, "alice", u.Username)
		assert.Equal(t, "Alice A.", u.FullName)
		assert.Equal(t, "Tea & travel", u.Bio)
		assert.True(t, strings.HasPrefix(u.ProfilePicture, "/uploads/profilePicture-"), u.ProfilePicture)
	})

	t.Run("blank email clears the address", func(t *testing.T) {
		path := "/api/users/" + itoa(aliceID)
		resp := doJSON(t, app, http.MethodPut, path, map[string]any{"email": "alice@example.com"}, alice)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var u models.User
		decode(t, resp, &u)
		require.Equal(t, "alice@example.com", u.Email)

		resp = doJSON(t, app, http.MethodPut, path, map[string]any{"email": ""}, alice)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		decode(t, resp, &u)
		assert.Empty(t, u.Email)

		resp = doJSON(t, app, http.MethodPut, path, map[string]any{"email": "nope"}, alice)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("taken username", func(t *testing.T) {
		resp := doMultipart(t, app, http.MethodPut, "/api/users/"+itoa(aliceID),
			map[string]string{"username": "bob_b"}, alice)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
