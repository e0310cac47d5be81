package site

import (
	"errors"

	"gorm.io/gorm"
)

var ErrSiteNotFound = errors.New("site not found")
var ErrSiteInUse = errors.New("site is referenced by tournaments or players")

// SiteRepository defines all database operations for sites.
type SiteRepository interface {
	CreateSite(s *Site) error
	GetSiteByID(id uint) (*Site, error)
	GetAllSites() ([]Site, error)
	UpdateSite(s *Site) error
	DeleteSite(id uint) error
}

type siteRepository struct {
	db *gorm.DB
}

// NewSiteRepository creates a new site repository
func NewSiteRepository(db *gorm.DB) SiteRepository {
	return &siteRepository{db: db}
}

// CreateSite adds a new site
func (r *siteRepository) CreateSite(s *Site) error {
	return r.db.Create(s).Error
}

// GetSiteByID retrieves a site by its ID
func (r *siteRepository) GetSiteByID(id uint) (*Site, error) {
	var s Site
	if err := r.db.Preload("System").First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSiteNotFound
		}
		return nil, err
	}
	return &s, nil
}

// GetAllSites retrieves all sites ordered by name
func (r *siteRepository) GetAllSites() ([]Site, error) {
	var sites []Site
	if err := r.db.Preload("System").Order("name asc").Find(&sites).Error; err != nil {
		return nil, err
	}
	return sites, nil
}

// UpdateSite persists changes to a site
func (r *siteRepository) UpdateSite(s *Site) error {
	return r.db.Save(s).Error
}

// DeleteSite removes a site unless tournaments or players still reference it
func (r *siteRepository) DeleteSite(id uint) error {
	var count int64
	if err := r.db.Table("tournaments").Where("site_id = ? AND deleted_at IS NULL", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrSiteInUse
	}
	if err := r.db.Table("players").Where("home_site_id = ? AND deleted_at IS NULL", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrSiteInUse
	}
	return r.db.Delete(&Site{}, id).Error
}
