package system

import (
	"errors"

	"gorm.io/gorm"
)

var ErrSystemNotFound = errors.New("system not found")
var ErrSystemInUse = errors.New("system is referenced by sites or tournaments")

// SystemRepository defines all database operations for game systems.
type SystemRepository interface {
	CreateSystem(s *System) error
	GetSystemByID(id uint) (*System, error)
	GetAllSystems() ([]System, error)
	UpdateSystem(s *System) error
	DeleteSystem(id uint) error
}

type systemRepository struct {
	db *gorm.DB
}

// NewSystemRepository creates a new system repository
func NewSystemRepository(db *gorm.DB) SystemRepository {
	return &systemRepository{db: db}
}

// CreateSystem adds a new system
func (r *systemRepository) CreateSystem(s *System) error {
	return r.db.Create(s).Error
}

// GetSystemByID retrieves a system by its ID
func (r *systemRepository) GetSystemByID(id uint) (*System, error) {
	var s System
	if err := r.db.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSystemNotFound
		}
		return nil, err
	}
	return &s, nil
}

// GetAllSystems retrieves all systems ordered by name
func (r *systemRepository) GetAllSystems() ([]System, error) {
	var systems []System
	if err := r.db.Order("name asc").Find(&systems).Error; err != nil {
		return nil, err
	}
	return systems, nil
}

// UpdateSystem persists changes to a system
func (r *systemRepository) UpdateSystem(s *System) error {
	return r.db.Save(s).Error
}

// DeleteSystem removes a system unless sites or tournaments still reference it
func (r *systemRepository) DeleteSystem(id uint) error {
	var count int64
	if err := r.db.Table("sites").Where("system_id = ? AND deleted_at IS NULL", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrSystemInUse
	}
	if err := r.db.Table("tournaments").Where("system_id = ? AND deleted_at IS NULL", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrSystemInUse
	}
	return r.db.Delete(&System{}, id).Error
}
