package player

import (
	"errors"

	"gorm.io/gorm"
)

var ErrPlayerNotFound = errors.New("player not found")
var ErrGradeNotFound = errors.New("grade not found")
var ErrGradeInUse = errors.New("grade is referenced by players")

// PlayerRepository defines all database operations for players and grades.
type PlayerRepository interface {
	GetPlayerByID(id uint) (*Player, error)
	GetPlayerByAlias(alias string) (*Player, error)
	GetAllPlayers(page, limit int) ([]Player, int64, error)
	UpdatePlayer(p *Player) error
	AliasTaken(alias string, excludeID uint) (bool, error)

	CreateGrade(g *Grade) error
	GetGradeByID(id uint) (*Grade, error)
	GetAllGrades() ([]Grade, error)
	UpdateGrade(g *Grade) error
	DeleteGrade(id uint) error
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

// GetPlayerByID retrieves a player by their ID
func (r *playerRepository) GetPlayerByID(id uint) (*Player, error) {
	var p Player
	if err := r.db.Preload("Grade").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetPlayerByAlias retrieves a player by their public alias
func (r *playerRepository) GetPlayerByAlias(alias string) (*Player, error) {
	var p Player
	if err := r.db.Preload("Grade").Where("lower(alias) = lower(?)", alias).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetAllPlayers retrieves all players with pagination, ordered by alias
func (r *playerRepository) GetAllPlayers(page, limit int) ([]Player, int64, error) {
	var players []Player
	var totalCount int64

	offset := (page - 1) * limit

	if err := r.db.Model(&Player{}).Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Preload("Grade").
		Order("alias asc").
		Offset(offset).Limit(limit).
		Find(&players).Error; err != nil {
		return nil, 0, err
	}

	return players, totalCount, nil
}

// UpdatePlayer persists changes to a player
func (r *playerRepository) UpdatePlayer(p *Player) error {
	return r.db.Save(p).Error
}

// AliasTaken reports whether another player already uses the alias,
// case-insensitively, excluding the given player.
func (r *playerRepository) AliasTaken(alias string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&Player{}).
		Where("lower(alias) = lower(?) AND id <> ?", alias, excludeID).
		Count(&count).Error
	return count > 0, err
}

// CreateGrade adds a new grade
func (r *playerRepository) CreateGrade(g *Grade) error {
	return r.db.Create(g).Error
}

// GetGradeByID retrieves a grade by its ID
func (r *playerRepository) GetGradeByID(id uint) (*Grade, error) {
	var g Grade
	if err := r.db.First(&g, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGradeNotFound
		}
		return nil, err
	}
	return &g, nil
}

// GetAllGrades retrieves all grades ordered by points descending
func (r *playerRepository) GetAllGrades() ([]Grade, error) {
	var grades []Grade
	if err := r.db.Order("points desc").Find(&grades).Error; err != nil {
		return nil, err
	}
	return grades, nil
}

// UpdateGrade persists changes to a grade
func (r *playerRepository) UpdateGrade(g *Grade) error {
	return r.db.Save(g).Error
}

// DeleteGrade removes a grade unless players still reference it
func (r *playerRepository) DeleteGrade(id uint) error {
	var count int64
	if err := r.db.Model(&Player{}).Where("grade_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrGradeInUse
	}
	return r.db.Delete(&Grade{}, id).Error
}
