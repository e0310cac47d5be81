package tournament

import (
	"time"

	"github.com/lsnz-league/lsnz/internal/site"
	"github.com/lsnz-league/lsnz/internal/system"
	"gorm.io/gorm"
)

// Tournament is a dated competitive series held at one site under one system.
type Tournament struct {
	gorm.Model
	Name      string         `gorm:"not null" json:"name"`
	Slug      string         `gorm:"uniqueIndex;not null" json:"slug"`
	SiteID    uint           `gorm:"index;not null" json:"site_id"`
	Site      *site.Site     `gorm:"constraint:OnDelete:RESTRICT" json:"site,omitempty"`
	StartDate time.Time      `gorm:"index;not null" json:"start_date"`
	EndDate   time.Time      `gorm:"index;not null" json:"end_date"`
	SystemID  uint           `gorm:"index;not null" json:"system_id"`
	System    *system.System `gorm:"constraint:OnDelete:RESTRICT" json:"system,omitempty"`
	Events    []Event        `json:"events,omitempty"`
}

// Event is one scheduled session within a tournament.
type Event struct {
	gorm.Model
	StartTime    time.Time  `gorm:"index;not null" json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
	PointsCap    *int       `json:"points_cap"`
	Format       string     `gorm:"not null" json:"format"`
	TournamentID uint       `gorm:"index;not null" json:"tournament_id"`
	SettingsID   uint       `gorm:"index;not null" json:"settings_id"`
	Settings     *Settings  `gorm:"constraint:OnDelete:RESTRICT" json:"settings,omitempty"`
}

// Settings is a reusable rules profile attached to events.
type Settings struct {
	gorm.Model
	Name                string        `gorm:"not null" json:"name"`
	StunsOn             bool          `gorm:"default:false" json:"stuns_on"`
	DeactivationTime    time.Duration `json:"deactivation_time"`
	TriggerLockoutDelay time.Duration `json:"trigger_lockout_delay"`
	ReloadsOn           bool          `gorm:"default:true" json:"reloads_on"`
}

// Team is a named grouping of registrations within one event. Teams go away
// with their event.
type Team struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	EventID uint   `gorm:"index;not null" json:"event_id"`
}

// DefaultPointsCap applies when an event is created without one.
const DefaultPointsCap = 30

// DefaultDeactivationTime applies when a settings profile is created without one.
const DefaultDeactivationTime = 8 * time.Second

// TournamentInput is the staff-facing payload for creating and updating tournaments.
type TournamentInput struct {
	Name      string    `json:"name" binding:"required,max=200"`
	SiteID    uint      `json:"site_id" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
	SystemID  uint      `json:"system_id" binding:"required"`
}

// EventInput is the staff-facing payload for creating and updating events.
type EventInput struct {
	StartTime  time.Time  `json:"start_time" binding:"required"`
	EndTime    *time.Time `json:"end_time"`
	PointsCap  *int       `json:"points_cap"`
	Format     string     `json:"format" binding:"required,max=50"`
	SettingsID uint       `json:"settings_id" binding:"required"`
}

// SettingsInput is the staff-facing payload for settings profiles. Durations
// are taken in milliseconds.
type SettingsInput struct {
	Name                  string `json:"name" binding:"required,max=50"`
	StunsOn               bool   `json:"stuns_on"`
	DeactivationTimeMs    *int64 `json:"deactivation_time_ms"`
	TriggerLockoutDelayMs *int64 `json:"trigger_lockout_delay_ms"`
	ReloadsOn             *bool  `json:"reloads_on"`
}

// TeamInput is the payload for creating teams within an event.
type TeamInput struct {
	Name string `json:"name" binding:"required,max=50"`
}
