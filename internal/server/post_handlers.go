package server

import (
	"pixelgram/internal/models"
	"pixelgram/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// postMediaFields are the multipart fields a post upload may use, in priority order.
var postMediaFields = []string{"image", "video", "audio"}

// GetPosts handles GET /api/posts
// @Summary List posts
// @Tags posts
// @Produce json
// @Success 200 {array} models.Post
// @Router /api/posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.feedService.GlobalFeed(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(posts)
}

// CreatePost handles POST /api/posts
// @Summary Create post
// @Tags posts
// @Accept mpfd
// @Produce json
// @Security SessionCookie
// @Param image formData file false "Image"
// @Param video formData file false "Video"
// @Param audio formData file false "Audio"
// @Param caption formData string false "Caption"
// @Param location formData string false "Location"
// @Success 201 {object} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Router /api/posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	field, fh := firstFormFile(c, postMediaFields...)
	if fh == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No media file uploaded"))
	}

	var cmd validation.CreatePost
	if err := bind(c, &cmd); err != nil {
		return nil
	}

	file, err := s.ingestor.Ingest(ctx, field, fh)
	if err != nil {
		return fail(c, err)
	}

	post, err := s.postService.CreatePost(ctx, currentUserID(c), cmd, file)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// LikePost handles POST /api/posts/:id/like. It toggles the caller's like.
// @Summary Toggle like
// @Tags posts
// @Produce json
// @Security SessionCookie
// @Param id path int true "Post ID"
// @Success 200 {object} object{liked=bool}
// @Failure 404 {object} models.ErrorResponse
// @Router /api/posts/{id}/like [post]
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	liked, err := s.graphService.ToggleLike(c.UserContext(), currentUserID(c), postID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"liked": liked})
}

// GetComments handles GET /api/posts/:id/comments
// @Summary List comments
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {array} models.Comment
// @Failure 404 {object} models.ErrorResponse
// @Router /api/posts/{id}/comments [get]
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.postService.Comments(c.UserContext(), postID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(comments)
}

// CreateComment handles POST /api/posts/:id/comments
// @Summary Add comment
// @Tags posts
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path int true "Post ID"
// @Param request body object{content=string} true "Comment"
// @Success 201 {object} models.Comment
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/posts/{id}/comments [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var cmd validation.CreateComment
	if err := bind(c, &cmd); err != nil {
		return nil
	}

	comment, err := s.postService.AddComment(c.UserContext(), currentUserID(c), postID, cmd)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}
