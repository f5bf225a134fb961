package server

import (
	"fmt"

	"pixelgram/internal/cache"
	"pixelgram/internal/featureflags"
	"pixelgram/internal/models"
	"pixelgram/internal/seed"

	"github.com/gofiber/fiber/v2"
)

// SeedPosts handles POST /api/seed/posts. It loads the sample content when
// the store is sparse and is unavailable in production.
// @Summary Seed sample posts
// @Tags dev
// @Produce json
// @Success 201 {object} object{message=string,posts=[]models.Post}
// @Success 200 {object} object{message=string,existingCount=int}
// @Failure 404 {object} models.ErrorResponse
// @Router /api/seed/posts [post]
func (s *Server) SeedPosts(c *fiber.Ctx) error {
	if s.config.IsProduction() || !s.featureFlags.Enabled(featureflags.SeedEndpoint, 0) {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Route", c.Path()))
	}

	ctx := c.UserContext()
	res, err := seed.NewSeeder(s.store, seed.Options{}).SamplePosts(ctx)
	if err != nil {
		return fail(c, err)
	}

	if !res.Seeded {
		return c.JSON(fiber.Map{
			"message":       "Sufficient posts already exist in the database",
			"existingCount": res.Existing,
		})
	}

	s.cache.Invalidate(ctx, cache.DirectoryKey)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("Successfully seeded %d posts", len(res.Posts)),
		"posts":   res.Posts,
	})
}
