package tournament

import (
	"errors"
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

var ErrTournamentNotFound = errors.New("tournament not found")
var ErrEventNotFound = errors.New("event not found")
var ErrSettingsNotFound = errors.New("settings not found")
var ErrTeamNotFound = errors.New("team not found")
var ErrTournamentHasEvents = errors.New("tournament still has events")
var ErrEventHasRegistrations = errors.New("event still has registrations")
var ErrTeamHasRegistrations = errors.New("team still has registrations")
var ErrSettingsInUse = errors.New("settings profile is referenced by events")

// TournamentRepository defines all database operations for tournaments,
// events, settings profiles and teams. It is the catalog the registration
// workflow reads from.
type TournamentRepository interface {
	// Tournament operations
	CreateTournament(t *Tournament) error
	GetTournamentByID(id uint) (*Tournament, error)
	GetTournamentBySlug(slug string) (*Tournament, error)
	GetAllTournaments(page, limit int) ([]Tournament, int64, error)
	UpdateTournament(t *Tournament) error
	DeleteTournament(id uint) error

	// Event operations
	CreateEvent(e *Event) error
	GetEventByID(id uint) (*Event, error)
	GetEventByIDAndTournament(eventID, tournamentID uint) (*Event, error)
	GetEventsByTournamentID(tournamentID uint) ([]Event, error)
	UpdateEvent(e *Event) error
	DeleteEvent(id uint) error

	// Settings operations
	CreateSettings(s *Settings) error
	GetSettingsByID(id uint) (*Settings, error)
	GetAllSettings() ([]Settings, error)
	UpdateSettings(s *Settings) error
	DeleteSettings(id uint) error

	// Team operations
	CreateTeam(t *Team) error
	GetTeamByID(id uint) (*Team, error)
	GetTeamsByEventID(eventID uint) ([]Team, error)
	DeleteTeam(id uint) error
}

type tournamentRepository struct {
	db *gorm.DB
}

// NewTournamentRepository creates a new tournament repository
func NewTournamentRepository(db *gorm.DB) TournamentRepository {
	return &tournamentRepository{db: db}
}

// CreateTournament adds a new tournament, generating a unique slug from its name
func (r *tournamentRepository) CreateTournament(t *Tournament) error {
	base := slug.Make(t.Name)
	t.Slug = base
	var count int64
	if err := r.db.Model(&Tournament{}).Where("slug LIKE ?", base+"%").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		t.Slug = fmt.Sprintf("%s-%d", base, count+1)
	}
	return r.db.Create(t).Error
}

// GetTournamentByID retrieves a tournament by its ID
func (r *tournamentRepository) GetTournamentByID(id uint) (*Tournament, error) {
	var t Tournament
	if err := r.db.Preload("Site").Preload("System").First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return &t, nil
}

// GetTournamentBySlug retrieves a tournament by its slug, with its events
// ordered by start time
func (r *tournamentRepository) GetTournamentBySlug(slugStr string) (*Tournament, error) {
	var t Tournament
	err := r.db.Preload("Site").Preload("System").
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("events.start_time asc")
		}).
		Preload("Events.Settings").
		Where("slug = ?", slugStr).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return &t, nil
}

// GetAllTournaments retrieves tournaments with pagination, newest first
func (r *tournamentRepository) GetAllTournaments(page, limit int) ([]Tournament, int64, error) {
	var tournaments []Tournament
	var totalCount int64

	offset := (page - 1) * limit

	if err := r.db.Model(&Tournament{}).Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Preload("Site").Preload("System").
		Order("start_date desc").
		Offset(offset).Limit(limit).
		Find(&tournaments).Error; err != nil {
		return nil, 0, err
	}

	return tournaments, totalCount, nil
}

// UpdateTournament persists changes to a tournament
func (r *tournamentRepository) UpdateTournament(t *Tournament) error {
	return r.db.Save(t).Error
}

// DeleteTournament removes a tournament unless events still reference it
func (r *tournamentRepository) DeleteTournament(id uint) error {
	var count int64
	if err := r.db.Model(&Event{}).Where("tournament_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrTournamentHasEvents
	}
	return r.db.Delete(&Tournament{}, id).Error
}

// CreateEvent adds a new event to a tournament
func (r *tournamentRepository) CreateEvent(e *Event) error {
	return r.db.Create(e).Error
}

// GetEventByID retrieves an event by its ID
func (r *tournamentRepository) GetEventByID(id uint) (*Event, error) {
	var e Event
	if err := r.db.Preload("Settings").First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &e, nil
}

// GetEventByIDAndTournament resolves an event only within the given
// tournament; an event id belonging to another tournament is not found.
func (r *tournamentRepository) GetEventByIDAndTournament(eventID, tournamentID uint) (*Event, error) {
	var e Event
	if err := r.db.Preload("Settings").Where("id = ? AND tournament_id = ?", eventID, tournamentID).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &e, nil
}

// GetEventsByTournamentID retrieves a tournament's events ordered by start time
func (r *tournamentRepository) GetEventsByTournamentID(tournamentID uint) ([]Event, error) {
	var events []Event
	if err := r.db.Preload("Settings").
		Where("tournament_id = ?", tournamentID).
		Order("start_time asc").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// UpdateEvent persists changes to an event
func (r *tournamentRepository) UpdateEvent(e *Event) error {
	return r.db.Save(e).Error
}

// DeleteEvent removes an event and its teams. Registrations protect the
// event from deletion.
func (r *tournamentRepository) DeleteEvent(id uint) error {
	var count int64
	if err := r.db.Table("registrations").Where("event_id = ? AND deleted_at IS NULL", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEventHasRegistrations
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		// Teams cascade with their event.
		if err := tx.Where("event_id = ?", id).Delete(&Team{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Event{}, id).Error
	})
}

// CreateSettings adds a new settings profile
func (r *tournamentRepository) CreateSettings(s *Settings) error {
	return r.db.Create(s).Error
}

// GetSettingsByID retrieves a settings profile by its ID
func (r *tournamentRepository) GetSettingsByID(id uint) (*Settings, error) {
	var s Settings
	if err := r.db.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}
	return &s, nil
}

// GetAllSettings retrieves all settings profiles ordered by name
func (r *tournamentRepository) GetAllSettings() ([]Settings, error) {
	var settings []Settings
	if err := r.db.Order("name asc").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettings persists changes to a settings profile
func (r *tournamentRepository) UpdateSettings(s *Settings) error {
	return r.db.Save(s).Error
}

// DeleteSettings removes a settings profile unless events still reference it
func (r *tournamentRepository) DeleteSettings(id uint) error {
	var count int64
	if err := r.db.Model(&Event{}).Where("settings_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrSettingsInUse
	}
	return r.db.Delete(&Settings{}, id).Error
}

// CreateTeam adds a new team to an event
func (r *tournamentRepository) CreateTeam(t *Team) error {
	return r.db.Create(t).Error
}

// GetTeamByID retrieves a team by its ID
func (r *tournamentRepository) GetTeamByID(id uint) (*Team, error) {
	var t Team
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return &t, nil
}

// GetTeamsByEventID retrieves all teams of an event
func (r *tournamentRepository) GetTeamsByEventID(eventID uint) ([]Team, error) {
	var teams []Team
	if err := r.db.Where("event_id = ?", eventID).Order("name asc").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// DeleteTeam removes a team unless registrations still reference it
func (r *tournamentRepository) DeleteTeam(id uint) error {
	var count int64
	if err := r.db.Table("registrations").Where("team_id = ? AND deleted_at IS NULL", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrTeamHasRegistrations
	}
	return r.db.Delete(&Team{}, id).Error
}
