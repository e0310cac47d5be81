package system

import (
	"github.com/lsnz-league/lsnz/config"
	mw "github.com/lsnz-league/lsnz/internal/middleware"
	"github.com/lsnz-league/lsnz/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterSystemRoutes sets up game system routes.
func RegisterSystemRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	systemRepo := NewSystemRepository(db)
	systemController := NewSystemController(systemRepo, appConfig)

	publicSystems := router.Group("/systems")
	{
		publicSystems.GET("", systemController.GetAllSystems)
		publicSystems.GET("/:system_id", systemController.GetSystemByID)
	}

	staffSystems := router.Group("/staff/systems")
	staffSystems.Use(mw.AuthMiddleware(jwtSecret, db))
	staffSystems.Use(rmiddleware.StaffMiddleware(db))
	{
		staffSystems.POST("", systemController.CreateSystem)
		staffSystems.PUT("/:system_id", systemController.UpdateSystem)
		staffSystems.PUT("/:system_id/image", systemController.UpdateSystemImage)
		staffSystems.DELETE("/:system_id", systemController.DeleteSystem)
	}
}
