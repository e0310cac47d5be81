package post

import (
	"testing"

	"github.com/lsnz-league/lsnz/internal/player"
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
	require.NoError(t, db.AutoMigrate(&player.Player{}, &player.Grade{}, &Post{}))
	return db
}

func seedAuthor(t *testing.T, db *gorm.DB) uint {
	t.Helper()
	p := player.Player{Email: "zap@example.com", Alias: "Zappy", Password: "x", IsStaff: true}
	require.NoError(t, db.Create(&p).Error)
	return p.ID
}

func TestCreatePostGeneratesSlug(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	authorID := seedAuthor(t, db)

	p := &Post{Title: "Season Opener Recap", Body: "What a night.", AuthorID: authorID}
	require.NoError(t, repo.CreatePost(p))
	assert.Equal(t, "season-opener-recap", p.Slug)

	got, err := repo.GetPostBySlug("season-opener-recap")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestCreatePostSlugCollision(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	authorID := seedAuthor(t, db)

	first := &Post{Title: "Results", Body: "a", AuthorID: authorID}
	require.NoError(t, repo.CreatePost(first))

	second := &Post{Title: "Results!", Body: "b", AuthorID: authorID}
	require.NoError(t, repo.CreatePost(second))

	assert.NotEqual(t, first.Slug, second.Slug)
}

func TestTitleTakenIgnoresCase(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	authorID := seedAuthor(t, db)

	p := &Post{Title: "Grading Night", Body: "a", AuthorID: authorID}
	require.NoError(t, repo.CreatePost(p))

	taken, err := repo.TitleTaken("grading night", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.TitleTaken("GRADING NIGHT", p.ID)
	require.NoError(t, err)
	assert.False(t, taken, "a post's own title does not block its update")

	taken, err = repo.TitleTaken("Something Else", 0)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestUpdatePostKeepsSlugStable(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	authorID := seedAuthor(t, db)

	p := &Post{Title: "Old Title", Body: "a", AuthorID: authorID}
	require.NoError(t, repo.CreatePost(p))
	original := p.Slug

	p.Title = "Brand New Title"
	p.Author = nil
	require.NoError(t, repo.UpdatePost(p))

	got, err := repo.GetPostBySlug(original)
	require.NoError(t, err)
	assert.Equal(t, "Brand New Title", got.Title)
}

func TestDeletePost(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	authorID := seedAuthor(t, db)

	p := &Post{Title: "Ephemeral", Body: "a", AuthorID: authorID}
	require.NoError(t, repo.CreatePost(p))

	require.NoError(t, repo.DeletePost(p.ID))

	_, err := repo.GetPostBySlug(p.Slug)
	assert.ErrorIs(t, err, ErrPostNotFound)

	assert.ErrorIs(t, repo.DeletePost(p.ID), ErrPostNotFound)
}
