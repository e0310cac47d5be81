package registration

import (
	"github.com/lsnz-league/lsnz/internal/tournament"
	"gorm.io/gorm"
)

// Registration ties a player to an event, optionally on a team. A player can
// hold at most one registration per event; the composite unique index is what
// enforces that under concurrent submissions.
type Registration struct {
	gorm.Model
	EventID  uint              `gorm:"uniqueIndex:idx_registrations_event_player;not null" json:"event_id"`
	Event    *tournament.Event `gorm:"constraint:OnDelete:RESTRICT" json:"event,omitempty"`
	PlayerID uint              `gorm:"uniqueIndex:idx_registrations_event_player;not null" json:"player_id"`
	TeamID   *uint             `gorm:"index" json:"team_id"`
	Team     *tournament.Team  `gorm:"constraint:OnDelete:RESTRICT" json:"team,omitempty"`
	Paid     bool              `gorm:"default:false" json:"paid"`
}

// EventState is one row of the tournament registration form: an event plus
// the viewing player's relationship to it.
type EventState struct {
	Event      tournament.Event `json:"event"`
	Registered bool             `json:"registered"`
	Started    bool             `json:"started"`
	Selectable bool             `json:"selectable"`
}

// BulkRegistrationRequest carries the whole form state. Keys are event ids,
// values whether the box is ticked; unticked and absent mean the same thing.
type BulkRegistrationRequest struct {
	Selections map[uint]bool `json:"selections" binding:"required"`
}

// SingleRegistrationRequest registers the caller for one event, optionally
// onto a team of that event.
type SingleRegistrationRequest struct {
	TeamID *uint `json:"team_id"`
}

// EventRegistrationStatus describes one event for the single-event view.
// Registration is only filled in for the logged-in owner.
type EventRegistrationStatus struct {
	Event        tournament.Event `json:"event"`
	Registered   bool             `json:"registered"`
	Started      bool             `json:"started"`
	Selectable   bool             `json:"selectable"`
	Registration *Registration    `json:"registration,omitempty"`
}

// PaidUpdateRequest is the staff payload for toggling a registration's paid flag.
type PaidUpdateRequest struct {
	Paid *bool `json:"paid" binding:"required"`
}
