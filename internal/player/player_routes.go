package player

import (
	"github.com/lsnz-league/lsnz/config"
	mw "github.com/lsnz-league/lsnz/internal/middleware"
	"github.com/lsnz-league/lsnz/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterPlayerRoutes sets up player and grade routes.
func RegisterPlayerRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	playerRepo := NewPlayerRepository(db)
	playerController := NewPlayerController(playerRepo, appConfig)

	// Public routes
	router.GET("/players", playerController.GetAllPlayers)
	router.GET("/players/:alias", playerController.GetPlayerByAlias)
	router.GET("/grades", playerController.GetAllGrades)

	// Authenticated routes
	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.PUT("/players/me", playerController.UpdateProfile)
		authRoutes.PUT("/players/me/picture", playerController.UpdateProfilePicture)
	}

	// Staff routes
	staffRoutes := router.Group("/staff")
	staffRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	staffRoutes.Use(rmiddleware.StaffMiddleware(db))
	{
		staffRoutes.POST("/grades", playerController.CreateGrade)
		staffRoutes.PUT("/grades/:grade_id", playerController.UpdateGrade)
		staffRoutes.DELETE("/grades/:grade_id", playerController.DeleteGrade)
	}
}
