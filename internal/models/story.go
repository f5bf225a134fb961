package models

import "time"

// StoryLifetime is how long a story stays visible after creation.
const StoryLifetime = 24 * time.Hour

// Story is an image visible until ExpiresAt. Expired rows are filtered at read time.
type Story struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ImageURL  string    `gorm:"not null" json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expiresAt"`
}

// VisibleAt reports whether the story is still visible at t.
func (s *Story) VisibleAt(t time.Time) bool {
	return t.Before(s.ExpiresAt)
}
