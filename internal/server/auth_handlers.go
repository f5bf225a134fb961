package server

import (
	"pixelgram/internal/middleware"
	"pixelgram/internal/models"
	"pixelgram/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/register
// @Summary Register
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{username=string,password=string,fullName=string,email=string} true "Registration"
// @Success 201 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Router /api/register [post]
func (s *Server) Register(c *fiber.Ctx) error {
	var cmd validation.Register
	if err := bind(c, &cmd); err != nil {
		return nil
	}

	user, sess, err := s.authService.Register(c.UserContext(), cmd)
	if err != nil {
		return fail(c, err)
	}

	s.setSessionCookie(c, sess)
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login handles POST /api/login
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{username=string,password=string} true "Credentials"
// @Success 200 {object} models.User
// @Failure 401 {object} models.ErrorResponse
// @Router /api/login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var cmd validation.Login
	if err := c.BodyParser(&cmd); err != nil || validation.Check(&cmd) != nil {
		// Malformed credentials fail exactly like wrong ones.
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication failed"))
	}

	user, sess, err := s.authService.Login(c.UserContext(), cmd)
	if err != nil {
		return fail(c, err)
	}

	s.setSessionCookie(c, sess)
	return c.JSON(user)
}

// Logout handles POST /api/logout. It succeeds without a session too.
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /api/logout [post]
func (s *Server) Logout(c *fiber.Ctx) error {
	if sid := c.Cookies(s.config.SessionCookieName); sid != "" {
		if err := s.authService.Logout(c.UserContext(), sid); err != nil {
			return fail(c, err)
		}
	}
	s.clearSessionCookie(c)
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

// CurrentUser handles GET /api/user
// @Summary Current user
// @Tags auth
// @Produce json
// @Security SessionCookie
// @Success 200 {object} models.User
// @Failure 401 {object} models.ErrorResponse
// @Router /api/user [get]
func (s *Server) CurrentUser(c *fiber.Ctx) error {
	sid, _ := middleware.SessionID(c)
	user, err := s.authService.CurrentUser(c.UserContext(), sid)
	if err != nil {
		return fail(c, err)
	}
	if user == nil {
		return unauthorized(c)
	}
	return c.JSON(user)
}
