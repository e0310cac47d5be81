package site

import (
	"github.com/lsnz-league/lsnz/config"
	mw "github.com/lsnz-league/lsnz/internal/middleware"
	"github.com/lsnz-league/lsnz/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterSiteRoutes sets up site routes.
func RegisterSiteRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	siteRepo := NewSiteRepository(db)
	siteController := NewSiteController(siteRepo, appConfig)

	publicSites := router.Group("/sites")
	{
		publicSites.GET("", siteController.GetAllSites)
		publicSites.GET("/:site_id", siteController.GetSiteByID)
	}

	staffSites := router.Group("/staff/sites")
	staffSites.Use(mw.AuthMiddleware(jwtSecret, db))
	staffSites.Use(rmiddleware.StaffMiddleware(db))
	{
		staffSites.POST("", siteController.CreateSite)
		staffSites.PUT("/:site_id", siteController.UpdateSite)
		staffSites.DELETE("/:site_id", siteController.DeleteSite)
	}
}
