package main

import (
	"log"

	"github.com/lsnz-league/lsnz/config"
	_ "github.com/lsnz-league/lsnz/docs"
	"github.com/lsnz-league/lsnz/internal/pass"
	"github.com/lsnz-league/lsnz/internal/player"
	"github.com/lsnz-league/lsnz/internal/post"
	"github.com/lsnz-league/lsnz/internal/registration"
	"github.com/lsnz-league/lsnz/internal/site"
	"github.com/lsnz-league/lsnz/internal/system"
	"github.com/lsnz-league/lsnz/internal/tournament"
	"github.com/lsnz-league/lsnz/routes"
)

// @title LSNZ League API
// @version 1.0
// @description Community backend for the laser sports league: players, tournaments, registrations, passes and news.
// @host localhost:8088
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&player.Player{}, &player.Grade{}, &player.RefreshToken{},
		&system.System{}, &site.Site{},
		&tournament.Tournament{}, &tournament.Event{}, &tournament.Settings{}, &tournament.Team{},
		&registration.Registration{},
		&pass.Pass{}, &post.Post{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(config.DB, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
