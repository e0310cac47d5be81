package registration

import (
	"errors"
	"time"

	"github.com/lsnz-league/lsnz/internal/tournament"
	"gorm.io/gorm"
)

var ErrNoEventSelected = errors.New("no event selected")
var ErrAlreadyRegistered = errors.New("already registered for this event")
var ErrEventStarted = errors.New("event has already started")
var ErrRegistrationNotFound = errors.New("registration not found")
var ErrTeamNotInEvent = errors.New("team does not belong to this event")

// RegistrationRepository defines all database operations for event registrations.
type RegistrationRepository interface {
	ListEventStates(tournamentID, playerID uint, now time.Time) ([]EventState, error)
	RegisterBulk(tournamentID, playerID uint, selections map[uint]bool, now time.Time) ([]Registration, error)
	RegisterSingle(eventID, playerID uint, teamID *uint, now time.Time) (*Registration, error)
	Deregister(eventID, playerID uint, now time.Time) error
	GetRegistration(eventID, playerID uint) (*Registration, error)
	GetRegistrationsByPlayer(playerID uint) ([]Registration, error)
	GetRegistrationsByEvent(eventID uint) ([]Registration, error)
	SetPaid(registrationID uint, paid bool) error
}

type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

// ListEventStates returns every event of a tournament annotated with the
// viewing player's state. playerID 0 means anonymous: nothing is registered
// and only timing decides selectability.
func (r *registrationRepository) ListEventStates(tournamentID, playerID uint, now time.Time) ([]EventState, error) {
	var events []tournament.Event
	if err := r.db.Preload("Settings").
		Where("tournament_id = ?", tournamentID).
		Order("start_time asc").
		Find(&events).Error; err != nil {
		return nil, err
	}

	registered := map[uint]bool{}
	if playerID != 0 {
		var regs []Registration
		if err := r.db.Where("player_id = ?", playerID).Find(&regs).Error; err != nil {
			return nil, err
		}
		for _, reg := range regs {
			registered[reg.EventID] = true
		}
	}

	states := make([]EventState, 0, len(events))
	for _, e := range events {
		started := !e.StartTime.After(now)
		states = append(states, EventState{
			Event:      e,
			Registered: registered[e.ID],
			Started:    started,
			Selectable: !started && !registered[e.ID],
		})
	}
	return states, nil
}

// RegisterBulk applies a whole form submission at once. Selected events that
// have started, are already registered, or belong to another tournament are
// skipped silently; resubmitting the same form is a no-op. Only an entirely
// empty selection is an error.
func (r *registrationRepository) RegisterBulk(tournamentID, playerID uint, selections map[uint]bool, now time.Time) ([]Registration, error) {
	any := false
	for _, on := range selections {
		if on {
			any = true
			break
		}
	}
	if !any {
		return nil, ErrNoEventSelected
	}

	var created []Registration
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Only this tournament's events are considered; ids from other
		// tournaments in the selection map are ignored.
		var events []tournament.Event
		if err := tx.Where("tournament_id = ?", tournamentID).Find(&events).Error; err != nil {
			return err
		}

		for _, e := range events {
			if !selections[e.ID] {
				continue
			}
			if !e.StartTime.After(now) {
				continue
			}

			var count int64
			if err := tx.Model(&Registration{}).
				Where("event_id = ? AND player_id = ?", e.ID, playerID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			reg := Registration{EventID: e.ID, PlayerID: playerID}
			if err := tx.Create(&reg).Error; err != nil {
				// A concurrent submission got there first; the outcome
				// is the same as the duplicate check above.
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					continue
				}
				return err
			}
			created = append(created, reg)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RegisterSingle registers a player for one event. Unlike the bulk path this
// rejects duplicates and started events outright.
func (r *registrationRepository) RegisterSingle(eventID, playerID uint, teamID *uint, now time.Time) (*Registration, error) {
	var e tournament.Event
	if err := r.db.First(&e, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tournament.ErrEventNotFound
		}
		return nil, err
	}
	if !e.StartTime.After(now) {
		return nil, ErrEventStarted
	}

	if teamID != nil {
		var t tournament.Team
		if err := r.db.First(&t, *teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, tournament.ErrTeamNotFound
			}
			return nil, err
		}
		if t.EventID != eventID {
			return nil, ErrTeamNotInEvent
		}
	}

	var count int64
	if err := r.db.Model(&Registration{}).
		Where("event_id = ? AND player_id = ?", eventID, playerID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyRegistered
	}

	reg := &Registration{EventID: eventID, PlayerID: playerID, TeamID: teamID}
	if err := r.db.Create(reg).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}
	return reg, nil
}

// Deregister removes a player's registration for an event. Once the event
// has started the registration is locked in.
func (r *registrationRepository) Deregister(eventID, playerID uint, now time.Time) error {
	var e tournament.Event
	if err := r.db.First(&e, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tournament.ErrEventNotFound
		}
		return err
	}
	if !e.StartTime.After(now) {
		return ErrEventStarted
	}

	// Unscoped so the unique index frees up and the player can register again.
	result := r.db.Unscoped().
		Where("event_id = ? AND player_id = ?", eventID, playerID).
		Delete(&Registration{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRegistrationNotFound
	}
	return nil
}

// GetRegistration retrieves a player's registration for one event
func (r *registrationRepository) GetRegistration(eventID, playerID uint) (*Registration, error) {
	var reg Registration
	if err := r.db.Preload("Event").Preload("Team").
		Where("event_id = ? AND player_id = ?", eventID, playerID).
		First(&reg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	return &reg, nil
}

// GetRegistrationsByPlayer retrieves all registrations of a player, soonest
// event first
func (r *registrationRepository) GetRegistrationsByPlayer(playerID uint) ([]Registration, error) {
	var regs []Registration
	if err := r.db.Preload("Event").Preload("Event.Settings").Preload("Team").
		Joins("JOIN events ON events.id = registrations.event_id").
		Where("registrations.player_id = ?", playerID).
		Order("events.start_time asc").
		Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

// GetRegistrationsByEvent retrieves all registrations of an event
func (r *registrationRepository) GetRegistrationsByEvent(eventID uint) ([]Registration, error) {
	var regs []Registration
	if err := r.db.Preload("Team").
		Where("event_id = ?", eventID).
		Order("created_at asc").
		Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

// SetPaid updates a registration's paid flag
func (r *registrationRepository) SetPaid(registrationID uint, paid bool) error {
	result := r.db.Model(&Registration{}).Where("id = ?", registrationID).Update("paid", paid)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRegistrationNotFound
	}
	return nil
}
