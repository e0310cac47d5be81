package tournament

import (
	"github.com/lsnz-league/lsnz/config"
	mw "github.com/lsnz-league/lsnz/internal/middleware"
	"github.com/lsnz-league/lsnz/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterTournamentRoutes sets up tournament, event, settings and team routes.
func RegisterTournamentRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	tournamentRepo := NewTournamentRepository(db)
	tournamentController := NewTournamentController(tournamentRepo, appConfig)

	publicTournaments := router.Group("/tournaments")
	{
		publicTournaments.GET("", tournamentController.GetAllTournaments)
		publicTournaments.GET("/:slug", tournamentController.GetTournamentBySlug)
	}

	// Events are listed by tournament id rather than slug so staff tooling
	// can reuse the same ids it mutates with.
	router.GET("/tournament-events/:tournament_id", tournamentController.GetTournamentEvents)
	router.GET("/events/:event_id/teams", tournamentController.GetEventTeams)
	router.GET("/settings", tournamentController.GetAllSettings)

	staff := router.Group("/staff")
	staff.Use(mw.AuthMiddleware(jwtSecret, db))
	staff.Use(rmiddleware.StaffMiddleware(db))
	{
		staff.POST("/tournaments", tournamentController.CreateTournament)
		staff.PUT("/tournaments/:tournament_id", tournamentController.UpdateTournament)
		staff.DELETE("/tournaments/:tournament_id", tournamentController.DeleteTournament)

		staff.POST("/tournaments/:tournament_id/events", tournamentController.CreateEvent)
		staff.PUT("/tournaments/:tournament_id/events/:event_id", tournamentController.UpdateEvent)
		staff.DELETE("/tournaments/:tournament_id/events/:event_id", tournamentController.DeleteEvent)

		staff.POST("/settings", tournamentController.CreateSettings)
		staff.PUT("/settings/:settings_id", tournamentController.UpdateSettings)
		staff.DELETE("/settings/:settings_id", tournamentController.DeleteSettings)

		staff.POST("/events/:event_id/teams", tournamentController.CreateTeam)
		staff.DELETE("/teams/:team_id", tournamentController.DeleteTeam)
	}
}
