package main

import (
	"context"
	"flag"
	"os"

	"github.com/IqbalAbhipraya/eai-tubes/internal/app/controllers"
	"github.com/IqbalAbhipraya/eai-tubes/internal/app/migrations"
	"github.com/IqbalAbhipraya/eai-tubes/internal/app/repositories"
	"github.com/IqbalAbhipraya/eai-tubes/internal/app/routes"
	"github.com/IqbalAbhipraya/eai-tubes/internal/app/services"
	"github.com/IqbalAbhipraya/eai-tubes/internal/config"
	"github.com/IqbalAbhipraya/eai-tubes/internal/db"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/logger"
	"github.com/IqbalAbhipraya/eai-tubes/internal/seed"
	"github.com/IqbalAbhipraya/eai-tubes/internal/server"
)

// @title Course Store API
// @version 1.0
// @description Owns the course catalog. One of the three stores behind the campus gateway.

// @host localhost:3002
// @BasePath /api/v1
// @schemes http

func main() {
	configPath := flag.String("config", "configs/course.yaml", "path to config file")
	seedData := flag.Bool("seed", false, "insert demo data after migrating")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format == "pretty",
	})
	lgr := logger.WithService(cfg.Server.Name)

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Fatal().Err(err).Msg("Failed to connect to database")
	}

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory("migrations/course"); err != nil {
		lgr.Fatal().Err(err).Msg("Failed to run migrations")
	}

	if *seedData {
		if err := seed.CourseStore(context.Background(), database.Pool, lgr); err != nil {
			lgr.Error().Err(err).Msg("Seeding finished with errors")
		}
	}

	courseRepo := repositories.NewCourseRepository(database.Pool)
	courseService := services.NewCourseService(courseRepo)
	courseController := controllers.NewCourseController(courseService)

	router := server.NewRouter(cfg)
	routes.SetupCourseRoutes(router, courseController)

	srv := server.New(cfg, router, database.Pool, lgr)
	if err := srv.Run(); err != nil {
		lgr.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
}
