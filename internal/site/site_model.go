package site

import (
	"github.com/lsnz-league/lsnz/internal/system"
	"gorm.io/gorm"
)

// Countries the league operates in. Anything else is recorded as "Other".
var Countries = []string{"US", "AU", "NZ", "DE", "FR", "FI", "SE", "Other"}

// Site is a physical venue. Each site plays one system by default.
type Site struct {
	gorm.Model
	Name     string         `gorm:"not null" json:"name"`
	Country  string         `gorm:"not null" json:"country"`
	Address  string         `gorm:"not null" json:"address"`
	SystemID uint           `gorm:"index;not null" json:"system_id"`
	System   *system.System `gorm:"constraint:OnDelete:RESTRICT" json:"system,omitempty"`
}

// SiteInput is the staff-facing payload for creating and updating sites.
type SiteInput struct {
	Name     string `json:"name" binding:"required,max=100"`
	Country  string `json:"country" binding:"required"`
	Address  string `json:"address" binding:"required,max=200"`
	SystemID uint   `json:"system_id" binding:"required"`
}

// ValidCountry reports whether the given country code is one the league knows.
func ValidCountry(country string) bool {
	for _, c := range Countries {
		if c == country {
			return true
		}
	}
	return false
}
