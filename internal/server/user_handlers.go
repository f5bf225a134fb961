package server

import (
	"net/url"

	"pixelgram/internal/models"
	"pixelgram/internal/service"
	"pixelgram/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetAllUsers handles GET /api/users/all
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Router /api/users/all [get]
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	users, err := s.userService.Directory(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(users)
}

// SearchUsers handles GET /api/users/search/:query
// @Summary Search users
// @Tags users
// @Produce json
// @Param query path string true "Substring of username or full name"
// @Success 200 {array} models.User
// @Failure 400 {object} models.ErrorResponse
// @Router /api/users/search/{query} [get]
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	raw, err := url.PathUnescape(c.Params("query"))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid search query"))
	}

	cmd := validation.Search{Query: raw}
	if err := validation.Check(&cmd); err != nil {
		return fail(c, err)
	}

	users, err := s.userService.Search(c.UserContext(), cmd.Query)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(users)
}

// GetUser handles GET /api/users/:usernameOrId
// @Summary Get user
// @Tags users
// @Produce json
// @Param usernameOrId path string true "Username or numeric ID"
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse
// @Router /api/users/{usernameOrId} [get]
func (s *Server) GetUser(c *fiber.Ctx) error {
	user, err := s.userService.Get(c.UserContext(), c.Params("usernameOrId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

// GetUserPosts handles GET /api/users/:username/posts
// @Summary User posts
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {array} models.Post
// @Failure 404 {object} models.ErrorResponse
// @Router /api/users/{username}/posts [get]
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	posts, err := s.feedService.ProfileFeed(c.UserContext(), c.Params("username"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(posts)
}

// GetUserStories handles GET /api/users/:username/stories
// @Summary User stories
// @Tags stories
// @Produce json
// @Param username path string true "Username"
// @Success 200 {array} models.Story
// @Failure 404 {object} models.ErrorResponse
// @Router /api/users/{username}/stories [get]
func (s *Server) GetUserStories(c *fiber.Ctx) error {
	stories, err := s.feedService.UserStories(c.UserContext(), c.Params("username"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(stories)
}

// GetFollowers handles GET /api/users/:username/followers
// @Summary Followers
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {array} models.User
// @Failure 404 {object} models.ErrorResponse
// @Router /api/users/{username}/followers [get]
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	users, err := s.graphService.Followers(c.UserContext(), c.Params("username"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(users)
}

// GetFollowing handles GET /api/users/:username/following
// @Summary Following
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {array} models.User
// @Failure 404 {object} models.ErrorResponse
// @Router /api/users/{username}/following [get]
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	users, err := s.graphService.Following(c.UserContext(), c.Params("username"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(users)
}

// ToggleFollow handles POST /api/users/:username/follow
// @Summary Toggle follow
// @Tags users
// @Produce json
// @Security SessionCookie
// @Param username path string true "Username"
// @Success 200 {object} object{following=bool}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/users/{username}/follow [post]
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	following, err := s.graphService.ToggleFollow(c.UserContext(), currentUserID(c), c.Params("username"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"following": following})
}

// UpdateProfile handles PUT /api/users/:id. Text fields are optional and a
// new picture arrives in the profilePicture multipart field.
// @Summary Update profile
// @Tags users
// @Accept mpfd
// @Produce json
// @Security SessionCookie
// @Param id path int true "User ID"
// @Param username formData string false "Username"
// @Param fullName formData string false "Full name"
// @Param email formData string false "Email, blank clears it"
// @Param bio formData string false "Bio"
// @Param profilePicture formData file false "Profile picture"
// @Success 200 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/users/{id} [put]
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var cmd validation.UpdateProfile
	if err := bind(c, &cmd); err != nil {
		return nil
	}

	in := service.UpdateProfileInput{
		ActorID:  currentUserID(c),
		TargetID: targetID,
		Fields:   cmd,
	}
	if fh := formFile(c, "profilePicture"); fh != nil {
		file, err := s.ingestor.Ingest(ctx, "profilePicture", fh)
		if err != nil {
			return fail(c, err)
		}
		in.ProfilePicture = file.URL
	}

	user, err := s.userService.UpdateProfile(ctx, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}
