package player

import (
	"time"

	"gorm.io/gorm"
)

// Player is the authenticated account. Email is the login identifier; the
// alias is the public name other players see.
type Player struct {
	gorm.Model
	Email          string     `gorm:"unique;not null" json:"email"`
	Alias          string     `gorm:"unique;not null" json:"alias"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Password       string     `json:"-"`
	GradeID        *uint      `gorm:"index" json:"grade_id"`
	Grade          *Grade     `gorm:"constraint:OnDelete:RESTRICT" json:"grade,omitempty"`
	ProfilePicture string     `json:"profile_picture"`
	PlayingSince   time.Time  `gorm:"index;autoCreateTime" json:"playing_since"`
	HomeSiteID     *uint      `json:"home_site_id"`
	Bio            string     `gorm:"type:text" json:"bio"`
	IsStaff        bool       `gorm:"default:false" json:"is_staff"`
	LastActive     time.Time  `json:"last_active"`
}

// Grade is a skill tier. Points give the ordering between tiers.
type Grade struct {
	gorm.Model
	Letter      string `gorm:"not null" json:"letter"`
	Points      int    `gorm:"default:0" json:"points"`
	Description string `json:"description"`
}

// RefreshToken persists issued refresh tokens so they can be rotated and
// invalidated on logout.
type RefreshToken struct {
	gorm.Model
	PlayerID  uint      `gorm:"index;not null" json:"player_id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
}

// ProfileUpdate lists exactly the fields a player may change on their own
// profile. Every settable field is enumerated here rather than resolved by
// name at runtime.
type ProfileUpdate struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Alias      string `json:"alias" binding:"required,max=20"`
	Bio        string `json:"bio"`
	HomeSiteID *uint  `json:"home_site_id"`
}

// GradeInput is the staff-facing payload for creating and updating grades.
type GradeInput struct {
	Letter      string `json:"letter" binding:"required,max=4"`
	Points      int    `json:"points"`
	Description string `json:"description" binding:"max=200"`
}
