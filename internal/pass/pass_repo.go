package pass

import (
	"errors"

	"gorm.io/gorm"
)

var ErrPassNotFound = errors.New("pass not found")

// PassRepository defines all database operations for passes.
type PassRepository interface {
	CreatePass(p *Pass) error
	GetPassByID(id uint) (*Pass, error)
	GetPassesByPlayer(playerID uint) ([]Pass, error)
	GetAllPasses(page, limit int) ([]Pass, int64, error)
	DeletePass(id uint) error
}

type passRepository struct {
	db *gorm.DB
}

// NewPassRepository creates a new pass repository
func NewPassRepository(db *gorm.DB) PassRepository {
	return &passRepository{db: db}
}

// CreatePass issues a new pass
func (r *passRepository) CreatePass(p *Pass) error {
	return r.db.Create(p).Error
}

// GetPassByID retrieves a pass by its ID
func (r *passRepository) GetPassByID(id uint) (*Pass, error) {
	var p Pass
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPassNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetPassesByPlayer retrieves all passes of a player, newest first
func (r *passRepository) GetPassesByPlayer(playerID uint) ([]Pass, error) {
	var passes []Pass
	if err := r.db.Where("player_id = ?", playerID).
		Order("start_date desc").
		Find(&passes).Error; err != nil {
		return nil, err
	}
	return passes, nil
}

// GetAllPasses retrieves passes with pagination, newest first
func (r *passRepository) GetAllPasses(page, limit int) ([]Pass, int64, error) {
	var passes []Pass
	var totalCount int64

	offset := (page - 1) * limit

	if err := r.db.Model(&Pass{}).Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Order("start_date desc").
		Offset(offset).Limit(limit).
		Find(&passes).Error; err != nil {
		return nil, 0, err
	}

	return passes, totalCount, nil
}

// DeletePass removes a pass
func (r *passRepository) DeletePass(id uint) error {
	result := r.db.Delete(&Pass{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPassNotFound
	}
	return nil
}
