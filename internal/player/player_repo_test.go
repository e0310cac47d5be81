package player

import (
	"testing"

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
	require.NoError(t, db.AutoMigrate(&Grade{}, &Player{}))
	return db
}

func seedPlayer(t *testing.T, db *gorm.DB, email, alias string) *Player {
	t.Helper()
	p := Player{Email: email, Alias: alias, Password: "x"}
	require.NoError(t, db.Create(&p).Error)
	return &p
}

func TestGetPlayerByAliasIgnoresCase(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlayerRepository(db)

	seedPlayer(t, db, "zap@example.com", "Zappy")

	got, err := repo.GetPlayerByAlias("zappy")
	require.NoError(t, err)
	assert.Equal(t, "Zappy", got.Alias)

	_, err = repo.GetPlayerByAlias("nobody")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestAliasTaken(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlayerRepository(db)

	p := seedPlayer(t, db, "zap@example.com", "Zappy")

	taken, err := repo.AliasTaken("zappy", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	// A player keeps their own alias on profile update.
	taken, err = repo.AliasTaken("ZAPPY", p.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.AliasTaken("Fresh", 0)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestDeleteGradeProtectedByPlayers(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlayerRepository(db)

	g := Grade{Letter: "A", Points: 100}
	require.NoError(t, repo.CreateGrade(&g))

	p := seedPlayer(t, db, "zap@example.com", "Zappy")
	p.GradeID = &g.ID
	require.NoError(t, repo.UpdatePlayer(p))

	assert.ErrorIs(t, repo.DeleteGrade(g.ID), ErrGradeInUse)

	p.GradeID = nil
	p.Grade = nil
	require.NoError(t, repo.UpdatePlayer(p))

	assert.NoError(t, repo.DeleteGrade(g.ID))
}

func TestGetAllGradesOrderedByPoints(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlayerRepository(db)

	require.NoError(t, repo.CreateGrade(&Grade{Letter: "C", Points: 10}))
	require.NoError(t, repo.CreateGrade(&Grade{Letter: "A", Points: 100}))
	require.NoError(t, repo.CreateGrade(&Grade{Letter: "B", Points: 50}))

	grades, err := repo.GetAllGrades()
	require.NoError(t, err)
	require.Len(t, grades, 3)
	assert.Equal(t, "A", grades[0].Letter)
	assert.Equal(t, "B", grades[1].Letter)
	assert.Equal(t, "C", grades[2].Letter)
}
