package tournament_test

import (
	"testing"
	"time"

	"github.com/lsnz-league/lsnz/internal/registration"
	"github.com/lsnz-league/lsnz/internal/site"
	"github.com/lsnz-league/lsnz/internal/system"
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
		&system.System{}, &site.Site{},
		&tournament.Tournament{}, &tournament.Event{}, &tournament.Settings{}, &tournament.Team{},
		&registration.Registration{},
	))
	return db
}

func seedSiteAndSystem(t *testing.T, db *gorm.DB) (uint, uint) {
	t.Helper()
	sys := system.System{Name: "Nexus"}
	require.NoError(t, db.Create(&sys).Error)
	s := site.Site{Name: "Wellington Arena", Country: "NZ", Address: "1 Cable St", SystemID: sys.ID}
	require.NoError(t, db.Create(&s).Error)
	return s.ID, sys.ID
}

func newTournament(siteID, systemID uint, name string) *tournament.Tournament {
	start := time.Date(2026, time.October, 3, 0, 0, 0, 0, time.UTC)
	return &tournament.Tournament{
		Name:      name,
		SiteID:    siteID,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 2),
		SystemID:  systemID,
	}
}

func TestCreateTournamentGeneratesSlug(t *testing.T) {
	db := newTestDB(t)
	repo := tournament.NewTournamentRepository(db)
	siteID, systemID := seedSiteAndSystem(t, db)

	tr := newTournament(siteID, systemID, "Spring Champs 2026")
	require.NoError(t, repo.CreateTournament(tr))
	assert.Equal(t, "spring-champs-2026", tr.Slug)
}

func TestCreateTournamentSlugCollision(t *testing.T) {
	db := newTestDB(t)
	repo := tournament.NewTournamentRepository(db)
	siteID, systemID := seedSiteAndSystem(t, db)

	first := newTournament(siteID, systemID, "Spring Champs")
	require.NoError(t, repo.CreateTournament(first))

	second := newTournament(siteID, systemID, "Spring Champs")
	require.NoError(t, repo.CreateTournament(second))

	assert.NotEqual(t, first.Slug, second.Slug)
	assert.Contains(t, second.Slug, "spring-champs")
}

func TestGetTournamentBySlugOrdersEvents(t *testing.T) {
	db := newTestDB(t)
	repo := tournament.NewTournamentRepository(db)
	siteID, systemID := seedSiteAndSystem(t, db)

	tr := newTournament(siteID, systemID, "Nationals")
	require.NoError(t, repo.CreateTournament(tr))

	settings := tournament.Settings{Name: "standard", DeactivationTime: tournament.DefaultDeactivationTime, ReloadsOn: true}
	require.NoError(t, repo.CreateSettings(&settings))

	later := tournament.Event{StartTime: tr.StartDate.Add(5 * time.Hour), Format: "teams", TournamentID: tr.ID, SettingsID: settings.ID}
	earlier := tournament.Event{StartTime: tr.StartDate.Add(1 * time.Hour), Format: "solo", TournamentID: tr.ID, SettingsID: settings.ID}
	require.NoError(t, repo.CreateEvent(&later))
	require.NoError(t, repo.CreateEvent(&earlier))

	got, err := repo.GetTournamentBySlug(tr.Slug)
	require.NoError(t, err)
	require.Len(t, got.Events, 2)
	assert.Equal(t, earlier.ID, got.Events[0].ID)
	assert.Equal(t, later.ID, got.Events[1].ID)
}

func TestGetEventByIDAndTournamentIsolation(t *testing.T) {
	db := newTestDB(t)
	repo := tournament.NewTournamentRepository(db)
	siteID, systemID := seedSiteAndSystem(t, db)

	a := newTournament(siteID, systemID, "Tournament A")
	b := newTournament(siteID, systemID, "Tournament B")
	require.NoError(t, repo.CreateTournament(a))
	require.NoError(t, repo.CreateTournament(b))

	settings := tournament.Settings{Name: "standard"}
	require.NoError(t, repo.CreateSettings(&settings))

	e := tournament.Event{StartTime: a.StartDate, Format: "solo", TournamentID: a.ID, SettingsID: settings.ID}
	require.NoError(t, repo.CreateEvent(&e))

	_, err := repo.GetEventByIDAndTournament(e.ID, a.ID)
	assert.NoError(t, err)

	_, err = repo.GetEventByIDAndTournament(e.ID, b.ID)
	assert.ErrorIs(t, err, tournament.ErrEventNotFound)
}

func TestDeleteTournamentProtectedByEvents(t *testing.T) {
	db := newTestDB(t)
	repo := tournament.NewTournamentRepository(db)
	siteID, systemID := seedSiteAndSystem(t, db)

	tr := newTournament(siteID, systemID, "Protected")
	require.NoError(t, repo.CreateTournament(tr))

	settings := tournament.Settings{Name: "standard"}
	require.NoError(t, repo.CreateSettings(&settings))

	e := tournament.Event{StartTime: tr.StartDate, Format: "solo", TournamentID: tr.ID, SettingsID: settings.ID}
	require.NoError(t, repo.CreateEvent(&e))

	assert.ErrorIs(t, repo.DeleteTournament(tr.ID), tournament.ErrTournamentHasEvents)

	require.NoError(t, repo.DeleteEvent(e.ID))
	assert.NoError(t, repo.DeleteTournament(tr.ID))
}

func TestDeleteEventProtectedByRegistrations(t *testing.T) {
	db := newTestDB(t)
	repo := tournament.NewTournamentRepository(db)
	siteID, systemID := seedSiteAndSystem(t, db)

	tr := newTournament(siteID, systemID, "Guarded")
	require.NoError(t, repo.CreateTournament(tr))

	settings := tournament.Settings{Name: "standard"}
	require.NoError(t, repo.CreateSettings(&settings))

	e := tournament.Event{StartTime: tr.StartDate, Format: "solo", TournamentID: tr.ID, SettingsID: settings.ID}
	require.NoError(t, repo.CreateEvent(&e))

	reg := registration.Registration{EventID: e.ID, PlayerID: 7}
	require.NoError(t, db.Create(&reg).Error)

	assert.ErrorIs(t, repo.DeleteEvent(e.ID), tournament.ErrEventHasRegistrations)

	require.NoError(t, db.Unscoped().Delete(&reg).Error)
	assert.NoError(t, repo.DeleteEvent(e.ID))
}

func TestDeleteEventCascadesTeams(t *testing.T) {
	db := newTestDB(t)
	repo := tournament.NewTournamentRepository(db)
	siteID, systemID := seedSiteAndSystem(t, db)

	tr := newTournament(siteID, systemID, "Cascade")
	require.NoError(t, repo.CreateTournament(tr))

	settings := tournament.Settings{Name: "standard"}
	require.NoError(t, repo.CreateSettings(&settings))

	e := tournament.Event{StartTime: tr.StartDate, Format: "teams", TournamentID: tr.ID, SettingsID: settings.ID}
	require.NoError(t, repo.CreateEvent(&e))

	team := tournament.Team{Name: "Blue Squad", EventID: e.ID}
	require.NoError(t, repo.CreateTeam(&team))

	require.NoError(t, repo.DeleteEvent(e.ID))

	teams, err := repo.GetTeamsByEventID(e.ID)
	require.NoError(t, err)
	assert.Empty(t, teams)
}

func TestDeleteSettingsProtectedByEvents(t *testing.T) {
	db := newTestDB(t)
	repo := tournament.NewTournamentRepository(db)
	siteID, systemID := seedSiteAndSystem(t, db)

	tr := newTournament(siteID, systemID, "Settings Guard")
	require.NoError(t, repo.CreateTournament(tr))

	settings := tournament.Settings{Name: "standard"}
	require.NoError(t, repo.CreateSettings(&settings))

	e := tournament.Event{StartTime: tr.StartDate, Format: "solo", TournamentID: tr.ID, SettingsID: settings.ID}
	require.NoError(t, repo.CreateEvent(&e))

	assert.ErrorIs(t, repo.DeleteSettings(settings.ID), tournament.ErrSettingsInUse)

	require.NoError(t, repo.DeleteEvent(e.ID))
	assert.NoError(t, repo.DeleteSettings(settings.ID))
}
