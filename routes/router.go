package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/lsnz-league/lsnz/config"
	"github.com/lsnz-league/lsnz/internal/auth"
	"github.com/lsnz-league/lsnz/internal/pass"
	"github.com/lsnz-league/lsnz/internal/player"
	"github.com/lsnz-league/lsnz/internal/post"
	"github.com/lsnz-league/lsnz/internal/registration"
	"github.com/lsnz-league/lsnz/internal/site"
	"github.com/lsnz-league/lsnz/internal/system"
	"github.com/lsnz-league/lsnz/internal/tournament"
)

// SetupRoutes builds the gin engine with every feature's routes mounted
// under /api.
func SetupRoutes(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	r.Static("/public", "./public")

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":   "LSNZ league API",
			"status": "ok",
		})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	jwtSecret := appConfig.JWT.AccessTokenSecret

	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, appConfig)
	player.RegisterPlayerRoutes(api, db, appConfig, jwtSecret)
	system.RegisterSystemRoutes(api, db, appConfig, jwtSecret)
	site.RegisterSiteRoutes(api, db, appConfig, jwtSecret)
	tournament.RegisterTournamentRoutes(api, db, appConfig, jwtSecret)
	registration.RegisterRegistrationRoutes(api, db, appConfig, jwtSecret)
	pass.RegisterPassRoutes(api, db, appConfig, jwtSecret)
	post.RegisterPostRoutes(api, db, appConfig, jwtSecret)

	return r
}
