package post

import (
	"time"

	"github.com/lsnz-league/lsnz/internal/player"
	"gorm.io/gorm"
)

// Post is a news article on the league site. Authors keep ownership: only
// the author may edit a post after publication.
type Post struct {
	gorm.Model
	Title       string         `gorm:"not null" json:"title"`
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Summary     string         `gorm:"size:200" json:"summary"`
	Body        string         `gorm:"type:text;not null" json:"body"`
	Image       string         `json:"image"`
	AuthorID    uint           `gorm:"index;not null" json:"author_id"`
	Author      *player.Player `gorm:"constraint:OnDelete:RESTRICT" json:"author,omitempty"`
	PublishedAt time.Time      `gorm:"index;autoCreateTime" json:"published_at"`
}

// PostInput is the payload for creating and updating posts.
type PostInput struct {
	Title   string `json:"title" binding:"required,max=200"`
	Summary string `json:"summary" binding:"max=200"`
	Body    string `json:"body" binding:"required"`
}
