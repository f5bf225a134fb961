package server

import (
	"pixelgram/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetConversation handles GET /api/messages/:userId. Both directions are
// returned, oldest first.
// @Summary Conversation
// @Tags messages
// @Produce json
// @Security SessionCookie
// @Param userId path int true "Other user ID"
// @Success 200 {array} models.Message
// @Failure 401 {object} models.ErrorResponse
// @Router /api/messages/{userId} [get]
func (s *Server) GetConversation(c *fiber.Ctx) error {
	otherID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	messages, err := s.feedService.Conversation(c.UserContext(), currentUserID(c), otherID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(messages)
}

// SendMessage handles POST /api/messages
// @Summary Send message
// @Tags messages
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body object{receiverId=int,content=string} true "Message"
// @Success 201 {object} models.Message
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/messages [post]
func (s *Server) SendMessage(c *fiber.Ctx) error {
	var cmd validation.SendMessage
	if err := bind(c, &cmd); err != nil {
		return nil
	}

	msg, err := s.messageService.Send(c.UserContext(), currentUserID(c), cmd)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}
