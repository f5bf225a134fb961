package server

import (
	"pixelgram/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetStories handles GET /api/stories. Only stories younger than a day are listed.
// @Summary Story tray
// @Tags stories
// @Produce json
// @Success 200 {array} models.Story
// @Router /api/stories [get]
func (s *Server) GetStories(c *fiber.Ctx) error {
	stories, err := s.feedService.StoryTray(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(stories)
}

// CreateStory handles POST /api/stories
// @Summary Create story
// @Tags stories
// @Accept mpfd
// @Produce json
// @Security SessionCookie
// @Param image formData file true "Story image"
// @Success 201 {object} models.Story
// @Failure 400 {object} models.ErrorResponse
// @Router /api/stories [post]
func (s *Server) CreateStory(c *fiber.Ctx) error {
	ctx := c.UserContext()

	fh := formFile(c, "image")
	if fh == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No image file uploaded"))
	}

	file, err := s.ingestor.Ingest(ctx, "image", fh)
	if err != nil {
		return fail(c, err)
	}

	story, err := s.storyService.Create(ctx, currentUserID(c), file)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(story)
}
