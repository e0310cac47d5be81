package pass

import (
	"github.com/lsnz-league/lsnz/config"
	mw "github.com/lsnz-league/lsnz/internal/middleware"
	"github.com/lsnz-league/lsnz/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterPassRoutes sets up pass routes.
func RegisterPassRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	passRepo := NewPassRepository(db)
	passController := NewPassController(passRepo, appConfig)

	authed := router.Group("/passes")
	authed.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authed.GET("/me", passController.GetMyPasses)
	}

	staff := router.Group("/staff/passes")
	staff.Use(mw.AuthMiddleware(jwtSecret, db))
	staff.Use(rmiddleware.StaffMiddleware(db))
	{
		staff.GET("", passController.GetAllPasses)
		staff.POST("", passController.CreatePass)
		staff.DELETE("/:pass_id", passController.DeletePass)
	}
}
