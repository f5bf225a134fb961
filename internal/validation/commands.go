package validation

import "strings"

// Register is the body of POST /api/register.
type Register struct {
	Username string `json:"username" form:"username" validate:"required,username"`
	Password string `json:"password" form:"password" validate:"required,min=6,max=128"`
	FullName string `json:"fullName" form:"fullName" validate:"max=100"`
	Email    string `json:"email" form:"email" validate:"omitempty,email,max=255"`
}

func (c *Register) Normalize() {
	c.Username = strings.TrimSpace(c.Username)
	c.FullName = Sanitize(c.FullName)
	c.Email = strings.TrimSpace(c.Email)
}

// Login is the body of POST /api/login. Only presence is checked so that
// malformed credentials fail the same way wrong ones do.
type Login struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

func (c *Login) Normalize() {
	c.Username = strings.TrimSpace(c.Username)
}

// CreatePost carries the text fields of a post upload.
type CreatePost struct {
	Caption  string `form:"caption" json:"caption" validate:"max=2200"`
	Location string `form:"location" json:"location" validate:"max=100"`
}

func (c *CreatePost) Normalize() {
	c.Caption = Sanitize(c.Caption)
	c.Location = Sanitize(c.Location)
}

// CreateComment is the body of POST /api/posts/:id/comments.
type CreateComment struct {
	Content string `json:"content" form:"content" validate:"required,max=2200"`
}

func (c *CreateComment) Normalize() {
	c.Content = Sanitize(c.Content)
}

// SendMessage is the body of POST /api/messages.
type SendMessage struct {
	ReceiverID uint   `json:"receiverId" form:"receiverId" validate:"required"`
	Content    string `json:"content" form:"content" validate:"required,max=2000"`
}

func (c *SendMessage) Normalize() {
	c.Content = Sanitize(c.Content)
}

// UpdateProfile is a partial profile update. Nil fields are left untouched and
// a blank username counts as absent. A blank email clears the stored address.
type UpdateProfile struct {
	Username *string `json:"username" form:"username" validate:"omitnil,username"`
	FullName *string `json:"fullName" form:"fullName" validate:"omitnil,max=100"`
	Email    *string `json:"email" form:"email" validate:"omitnil,max=255,email_or_blank"`
	Bio      *string `json:"bio" form:"bio" validate:"omitnil,max=500"`
}

func (c *UpdateProfile) Normalize() {
	if c.Username != nil {
		trimmed := strings.TrimSpace(*c.Username)
		c.Username = &trimmed
		if trimmed == "" {
			c.Username = nil
		}
	}
	if c.Email != nil {
		trimmed := strings.TrimSpace(*c.Email)
		c.Email = &trimmed
	}
	sanitizePtr(c.FullName)
	sanitizePtr(c.Bio)
}

// CreateReel carries the text fields of a reel upload.
type CreateReel struct {
	Caption string `form:"caption" json:"caption" validate:"max=2200"`
	Filter  string `form:"filter" json:"filter" validate:"max=32"`
	AudioID string `form:"audioId" json:"audioId" validate:"max=16"`
}

func (c *CreateReel) Normalize() {
	c.Caption = Sanitize(c.Caption)
	c.Filter = strings.ToLower(strings.TrimSpace(c.Filter))
	c.AudioID = strings.TrimSpace(c.AudioID)
}

// Search is a user directory query from the REST or realtime surface.
type Search struct {
	Query string `json:"query" validate:"max=100"`
}

func (c *Search) Normalize() {
	c.Query = strings.TrimSpace(c.Query)
}
