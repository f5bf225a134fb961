package models

import "time"

// DefaultReelFilter is applied when an upload names no filter.
const DefaultReelFilter = "normal"

// Reel is a short video. Likes mirrors the ReelLike rows and Views only grows.
type Reel struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"userId"`
	User       *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	VideoURL   string    `gorm:"not null" json:"videoUrl"`
	Thumbnail  string    `json:"thumbnail"`
	Caption    string    `gorm:"type:text" json:"caption"`
	Filter     string    `gorm:"size:32;not null;default:'normal'" json:"filter"`
	AudioTrack string    `gorm:"size:100" json:"audioTrack"`
	Likes      int       `gorm:"not null;default:0" json:"likes"`
	Views      int       `gorm:"not null;default:0" json:"views"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`
}

// ReelLike is the edge between a user and a reel they like.
type ReelLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_reel_likes_user_reel" json:"userId"`
	ReelID    uint      `gorm:"not null;uniqueIndex:idx_reel_likes_user_reel;index" json:"reelId"`
	CreatedAt time.Time `json:"createdAt"`
}

var audioCatalog = map[string]string{
	"1": "Bollywood Beat",
	"2": "Kerala Rhythm",
	"3": "Punjabi Dance",
	"4": "Tamil Classic",
	"5": "Folk Fusion",
}

// AudioTrackName resolves a catalog id to its track name.
func AudioTrackName(audioID string) string {
	if name, ok := audioCatalog[audioID]; ok {
		return name
	}
	return "Original Audio"
}
