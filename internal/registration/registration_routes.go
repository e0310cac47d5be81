package registration

import (
	"github.com/lsnz-league/lsnz/config"
	mw "github.com/lsnz-league/lsnz/internal/middleware"
	"github.com/lsnz-league/lsnz/internal/tournament"
	"github.com/lsnz-league/lsnz/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRegistrationRoutes sets up registration routes.
func RegisterRegistrationRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	registrationRepo := NewRegistrationRepository(db)
	tournamentRepo := tournament.NewTournamentRepository(db)
	registrationController := NewRegistrationController(registrationRepo, tournamentRepo, appConfig)

	// The state views work logged out; writes need a player.
	optional := mw.OptionalAuthMiddleware(jwtSecret, db)
	router.GET("/tournaments/:slug/registration", optional, registrationController.GetTournamentRegistration)
	router.GET("/events/:event_id/registration", optional, registrationController.GetEventRegistration)

	authed := router.Group("")
	authed.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authed.POST("/tournaments/:slug/registration", registrationController.SubmitTournamentRegistration)
		authed.POST("/events/:event_id/registration", registrationController.RegisterForEvent)
		authed.DELETE("/events/:event_id/registration", registrationController.DeregisterFromEvent)
		authed.GET("/registrations/me", registrationController.GetMyRegistrations)
	}

	staff := router.Group("/staff")
	staff.Use(mw.AuthMiddleware(jwtSecret, db))
	staff.Use(rmiddleware.StaffMiddleware(db))
	{
		staff.GET("/events/:event_id/registrations", registrationController.GetEventRegistrations)
		staff.PUT("/registrations/:registration_id/paid", registrationController.UpdateRegistrationPaid)
	}
}
