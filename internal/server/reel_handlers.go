package server

import (
	"pixelgram/internal/models"
	"pixelgram/internal/service"
	"pixelgram/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetReels handles GET /api/reels
// @Summary List reels
// @Tags reels
// @Produce json
// @Success 200 {array} models.Reel
// @Router /api/reels [get]
func (s *Server) GetReels(c *fiber.Ctx) error {
	reels, err := s.feedService.Reels(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(reels)
}

// CreateReel handles POST /api/reels. The video is required, the thumbnail is not.
// @Summary Create reel
// @Tags reels
// @Accept mpfd
// @Produce json
// @Security SessionCookie
// @Param video formData file true "Video"
// @Param thumbnail formData file false "Thumbnail"
// @Param caption formData string false "Caption"
// @Param filter formData string false "Filter"
// @Param audioId formData string false "Audio track id"
// @Success 201 {object} models.Reel
// @Failure 400 {object} models.ErrorResponse
// @Router /api/reels [post]
func (s *Server) CreateReel(c *fiber.Ctx) error {
	ctx := c.UserContext()

	videoHeader := formFile(c, "video")
	if videoHeader == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No video file uploaded"))
	}

	var cmd validation.CreateReel
	if err := bind(c, &cmd); err != nil {
		return nil
	}

	video, err := s.ingestor.Ingest(ctx, "video", videoHeader)
	if err != nil {
		return fail(c, err)
	}
	in := service.CreateReelInput{
		UserID: currentUserID(c),
		Fields: cmd,
		Video:  video,
	}

	if thumbHeader := formFile(c, "thumbnail"); thumbHeader != nil {
		thumb, err := s.ingestor.Ingest(ctx, "thumbnail", thumbHeader)
		if err != nil {
			s.ingestor.Discard(ctx, video.URL)
			return fail(c, err)
		}
		in.Thumbnail = thumb
	}

	reel, err := s.reelService.Create(ctx, in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reel)
}

// LikeReel handles POST /api/reels/:id/like
// @Summary Toggle reel like
// @Tags reels
// @Produce json
// @Security SessionCookie
// @Param id path int true "Reel ID"
// @Success 200 {object} object{liked=bool}
// @Failure 404 {object} models.ErrorResponse
// @Router /api/reels/{id}/like [post]
func (s *Server) LikeReel(c *fiber.Ctx) error {
	reelID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	liked, err := s.graphService.ToggleReelLike(c.UserContext(), currentUserID(c), reelID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"liked": liked})
}

// ViewReel handles POST /api/reels/:id/view
// @Summary Count view
// @Tags reels
// @Produce json
// @Param id path int true "Reel ID"
// @Success 200 {object} object{views=int}
// @Failure 404 {object} models.ErrorResponse
// @Router /api/reels/{id}/view [post]
func (s *Server) ViewReel(c *fiber.Ctx) error {
	reelID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	views, err := s.reelService.View(c.UserContext(), reelID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"views": views})
}
