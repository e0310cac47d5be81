package system

import "gorm.io/gorm"

// System is a game ruleset/product (e.g. a laser tag hardware system)
// played at sites and tournaments.
type System struct {
	gorm.Model
	Name        string `gorm:"unique;not null" json:"name"`
	Image       string `json:"image"`
	Description string `gorm:"type:text" json:"description"`
}

// SystemInput is the staff-facing payload for creating and updating systems.
type SystemInput struct {
	Name        string `json:"name" binding:"required,max=50"`
	Description string `json:"description"`
}
