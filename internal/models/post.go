package models

import (
	"time"
)

// Media kinds accepted for posts.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
	MediaTypeAudio = "audio"
)

// Post is a media post. Likes is denormalized and only ever written by the like repository.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Caption   string    `gorm:"type:text" json:"caption"`
	ImageURL  string    `gorm:"not null" json:"imageUrl"`
	MediaType string    `gorm:"size:16;not null;default:'image'" json:"mediaType"`
	Location  string    `gorm:"size:100" json:"location"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

// PostPatch carries the editable fields of a post.
type PostPatch struct {
	Caption  *string
	Location *string
}

// Columns returns the column/value map gorm needs for an Updates call.
func (p PostPatch) Columns() map[string]any {
	cols := make(map[string]any)
	if p.Caption != nil {
		cols["caption"] = *p.Caption
	}
	if p.Location != nil {
		cols["location"] = *p.Location
	}
	return cols
}

// Apply merges the patch into post.
func (p PostPatch) Apply(post *Post) {
	if p.Caption != nil {
		post.Caption = *p.Caption
	}
	if p.Location != nil {
		post.Location = *p.Location
	}
}

// Comment is a comment on a post.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"postId"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
