package registration

import (
	"testing"
	"time"

	"github.com/lsnz-league/lsnz/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&tournament.Settings{}, &tournament.Event{}, &tournament.Team{},
		&Registration{},
	))
	return db
}

func seedEvent(t *testing.T, db *gorm.DB, tournamentID uint, start time.Time) *tournament.Event {
	t.Helper()
	settings := tournament.Settings{Name: "standard", DeactivationTime: tournament.DefaultDeactivationTime, ReloadsOn: true}
	require.NoError(t, db.Create(&settings).Error)
	pointsCap := tournament.DefaultPointsCap
	e := tournament.Event{
		StartTime:    start,
		PointsCap:    &pointsCap,
		Format:       "solo",
		TournamentID: tournamentID,
		SettingsID:   settings.ID,
	}
	require.NoError(t, db.Create(&e).Error)
	return &e
}

func TestRegisterBulkCreatesSelectedRegistrations(t *testing.T) {
	db := newTestDB(t)
	repo := NewRegistrationRepository(db)
	now := time.Now()

	e1 := seedEvent(t, db, 1, now.Add(time.Hour))
	e2 := seedEvent(t, db, 1, now.Add(2*time.Hour))
	e3 := seedEvent(t, db, 1, now.Add(3*time.Hour))

	created, err := repo.RegisterBulk(1, 7, map[uint]bool{e1.ID: true, e2.ID: false, e3.ID: true}, now)
	require.NoError(t, err)
	assert.Len(t, created, 2)

	var count int64
	require.NoError(t, db.Model(&Registration{}).Where("player_id = ?", 7).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestRegisterBulkEmptySelection(t *testing.T) {
	db := newTestDB(t)
	repo := NewRegistrationRepository(db)
	now := time.Now()
	seedEvent(t, db, 1, now.Add(time.Hour))

	_, err := repo.RegisterBulk(1, 7, map[uint]bool{}, now)
	assert.ErrorIs(t, err, ErrNoEventSelected)

	// All boxes unticked is the same as none sent.
	_, err = repo.RegisterBulk(1, 7, map[uint]bool{1: false, 2: false}, now)
	assert.ErrorIs(t, err, ErrNoEventSelected)
}

func TestRegisterBulkSkipsStartedEvents(t *testing.T) {
	db := newTestDB(t)
	repo := NewRegistrationRepository(db)
	now := time.Now()

	past := seedEvent(t, db, 1, now.Add(-time.Hour))
	future := seedEvent(t, db, 1, now.Add(time.Hour))

	created, err := repo.RegisterBulk(1, 7, map[uint]bool{past.ID: true, future.ID: true}, now)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, future.ID, created[0].EventID)
}

func TestRegisterBulkIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewRegistrationRepository(db)
	now := time.Now()

	e := seedEvent(t, db, 1, now.Add(time.Hour))
	selections := map[uint]bool{e.ID: true}

	first, err := repo.RegisterBulk(1, 7, selections, now)
	require.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := repo.RegisterBulk(1, 7, selections, now)
	require.NoError(t, err)
	assert.Empty(t, second)

	var count int64
	require.NoError(t, db.Model(&Registration{}).Where("player_id = ?", 7).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegisterBulkIgnoresOtherTournamentsEvents(t *testing.T) {
	db := newTestDB(t)
	repo := NewRegistrationRepository(db)
	now := time.Now()

	mine := seedEvent(t, db, 1, now.Add(time.Hour))
	other := seedEvent(t, db, 2, now.Add(time.Hour))

	created, err := repo.RegisterBulk(1, 7, map[uint]bool{mine.ID: true, other.ID: true}, now)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, mine.ID, created[0].EventID)
}

func TestRegisterBulkMixedSelections(t *testing.T) {
	db := newTestDB(t)
	repo := NewRegistrationRepository(db)
	now := time.Now()

	yesterday := seedEvent(t, db, 1, now.Add(-24*time.Hour))
	tomorrow := seedEvent(t, db, 1, now.Add(24*time.Hour))
	nextWeek := seedEvent(t, db, 1, now.Add(7*24*time.Hour))

	selections := map[uint]bool{yesterday.ID: true, tomorrow.ID: true, nextWeek.ID: true}

	created, err := repo.RegisterBulk(1, 7, selections, now)
	require.NoError(t, err)
	assert.Len(t, created, 2)

	again, err := repo.RegisterBulk(1, 7, selections, now)
	require.NoError(t, err)
	assert.Empty(t, again)

	var count int64
	require.NoError(t, db.Model(&Registration{}).Where("player_id = ?", 7).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestRegisterSingleRejectsDuplicate(t *testing.T) {
	db := newTestDB(t)
	repo := NewRegistrationRepository(db)
	now := time.Now()

	e := seedEvent(t, db, 1, now.Add(time.Hour))

	_, err := repo.RegisterSingle(e.ID, 7, nil, now)
	require.NoError(t, err)

	_, err = repo.RegisterSingle(e.ID, 7, nil, now)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestRegisterSingleRejectsStartedEvent(t *testing.T) {
	db := newTestDB(t)
	repo := NewRegistrationRepository(db)
	now := time.Now()

	e := seedEvent(t, db, 1, now.Add(-time.Minute))

	_, err := repo.RegisterSingle(e.ID, 7, nil, now)
	assert.ErrorIs(t, err, ErrEventStarted)
}

func TestRegisterSingleUnknownEvent(t *testing.T) {
	db := newTestDB(t)
	repo := NewRegistrationRepository(db)

	_, err := repo.RegisterSingle(9999, 7, nil, time.Now())
	assert.ErrorIs(t, err, tournament.ErrEventNotFound)
}

func TestRegisterSingleTeamMustBelongToEvent(t *testing.T) {
	db := newTestDB(t)
	repo := NewRegistrationRepository(db)
	now := time.Now()

	e1 := seedEvent(t, db, 1, now.Add(time.Hour))
	e2 := seedEvent(t, db, 1, now.Add(2*time.Hour))

	team := tournament.Team{Name: "Red Five", EventID: e2.ID}
	require.NoError(t, db.Create(&team).Error)

	_, err := repo.RegisterSingle(e1.ID, 7, &team.ID, now)
	assert.ErrorIs(t, err, ErrTeamNotInEvent)

	reg, err := repo.RegisterSingle(e2.ID, 7, &team.ID, now)
	require.NoError(t, err)
	require.NotNil(t, reg.TeamID)
	assert.Equal(t, team.ID, *reg.TeamID)
}

func TestDeregisterFreesTheSlot(t *testing.T) {
	db := newTestDB(t)
	repo := NewRegistrationRepository(db)
	now := time.Now()

	e := seedEvent(t, db, 1, now.Add(time.Hour))

	_, err := repo.RegisterSingle(e.ID, 7, nil, now)
	require.NoError(t, err)

	require.NoError(t, repo.Deregister(e.ID, 7, now))

	// The unique slot is free again.
	_, err = repo.RegisterSingle(e.ID, 7, nil, now)
	assert.NoError(t, err)
}

func TestDeregisterAfterStartIsLocked(t *testing.T) {
	db := newTestDB(t)
	repo := NewRegistrationRepository(db)

	start := time.Now().Add(time.Hour)
	e := seedEvent(t, db, 1, start)

	_, err := repo.RegisterSingle(e.ID, 7, nil, time.Now())
	require.NoError(t, err)

	err = repo.Deregister(e.ID, 7, start.Add(time.Minute))
	assert.ErrorIs(t, err, ErrEventStarted)
}

func TestDeregisterWithoutRegistration(t *testing.T) {
	db := newTestDB(t)
	repo := NewRegistrationRepository(db)
	now := time.Now()

	e := seedEvent(t, db, 1, now.Add(time.Hour))

	err := repo.Deregister(e.ID, 7, now)
	assert.ErrorIs(t, err, ErrRegistrationNotFound)
}

func TestListEventStates(t *testing.T) {
	db := newTestDB(t)
	repo := NewRegistrationRepository(db)
	now := time.Now()

	past := seedEvent(t, db, 1, now.Add(-time.Hour))
	registered := seedEvent(t, db, 1, now.Add(time.Hour))
	open := seedEvent(t, db, 1, now.Add(2*time.Hour))

	_, err := repo.RegisterSingle(registered.ID, 7, nil, now)
	require.NoError(t, err)

	states, err := repo.ListEventStates(1, 7, now)
	require.NoError(t, err)
	require.Len(t, states, 3)

	byID := map[uint]EventState{}
	for _, s := range states {
		byID[s.Event.ID] = s
	}

	assert.True(t, byID[past.ID].Started)
	assert.False(t, byID[past.ID].Selectable)

	assert.True(t, byID[registered.ID].Registered)
	assert.False(t, byID[registered.ID].Selectable)

	assert.False(t, byID[open.ID].Started)
	assert.False(t, byID[open.ID].Registered)
	assert.True(t, byID[open.ID].Selectable)
}

func TestListEventStatesAnonymous(t *testing.T) {
	db := newTestDB(t)
	repo := NewRegistrationRepository(db)
	now := time.Now()

	seedEvent(t, db, 1, now.Add(time.Hour))

	states, err := repo.ListEventStates(1, 0, now)
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.False(t, states[0].Registered)
	assert.True(t, states[0].Selectable)
}
