package pass

import (
	"time"

	"gorm.io/gorm"
)

// Pass types. A monthly pass covers one month of play, a season pass a whole
// season.
const (
	TypeMonthly = "monthly"
	TypeSeason  = "season"
)

// Pass grants a player site access for a date window. Both ends of the
// window are inclusive: a pass ending today still counts today.
type Pass struct {
	gorm.Model
	PlayerID    uint      `gorm:"index;not null" json:"player_id"`
	Type        string    `gorm:"not null" json:"type"`
	PurchasedAt time.Time `gorm:"autoCreateTime" json:"purchased_at"`
	StartDate   time.Time `gorm:"index;not null" json:"start_date"`
	EndDate     time.Time `gorm:"index;not null" json:"end_date"`
	PricePaid   string    `gorm:"type:decimal(8,2);default:0" json:"price_paid"`
}

// ActiveOn reports whether the pass covers the given day. Comparison is at
// date precision; the time of day never matters.
func (p *Pass) ActiveOn(day time.Time) bool {
	d := dateOf(day)
	return !d.Before(dateOf(p.StartDate)) && !d.After(dateOf(p.EndDate))
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// PassInput is the staff-facing payload for issuing passes. When the end
// date is omitted it is derived from the type: a month for monthly passes,
// a year for season passes, both inclusive of the start day.
type PassInput struct {
	PlayerID  uint       `json:"player_id" binding:"required"`
	Type      string     `json:"type" binding:"required,oneof=monthly season"`
	StartDate time.Time  `json:"start_date" binding:"required"`
	EndDate   *time.Time `json:"end_date"`
	PricePaid string     `json:"price_paid"`
}

// PassState is a pass annotated with whether it is active right now.
type PassState struct {
	Pass   Pass `json:"pass"`
	Active bool `json:"active"`
}

// DeriveEndDate returns the inclusive end of a pass window started on start.
func DeriveEndDate(passType string, start time.Time) time.Time {
	switch passType {
	case TypeSeason:
		return start.AddDate(1, 0, -1)
	default:
		return start.AddDate(0, 1, -1)
	}
}
