// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents an account. Password holds the scrypt "digest.salt" string and is never serialized.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"size:30;not null;uniqueIndex:idx_users_username" json:"username"`
	Password       string    `gorm:"not null" json:"-"`
	FullName       string    `gorm:"size:100" json:"fullName"`
	Bio            string    `gorm:"type:text" json:"bio"`
	Email          string    `gorm:"size:255" json:"email"`
	ProfilePicture string    `json:"profilePicture"`
	IsVerified     bool      `gorm:"not null;default:false" json:"isVerified"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"-"`
}

// UserPatch carries the fields of a partial profile update. Nil fields are left untouched.
type UserPatch struct {
	Username       *string
	FullName       *string
	Email          *string
	Bio            *string
	ProfilePicture *string
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.Username == nil && p.FullName == nil && p.Email == nil &&
		p.Bio == nil && p.ProfilePicture == nil
}

// Apply merges the patch into u.
func (p UserPatch) Apply(u *User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.ProfilePicture != nil {
		u.ProfilePicture = *p.ProfilePicture
	}
}

// Columns returns the column/value map gorm needs for an Updates call.
func (p UserPatch) Columns() map[string]any {
	cols := make(map[string]any)
	if p.Username != nil {
		cols["username"] = *p.Username
	}
	if p.FullName != nil {
		cols["full_name"] = *p.FullName
	}
	if p.Email != nil {
		cols["email"] = *p.Email
	}
	if p.Bio != nil {
		cols["bio"] = *p.Bio
	}
	if p.ProfilePicture != nil {
		cols["profile_picture"] = *p.ProfilePicture
	}
	return cols
}
