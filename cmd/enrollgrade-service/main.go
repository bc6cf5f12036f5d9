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

// @title Enrollment Store API
// @version 1.0
// @description Owns enrollments and grades. Student and course ids held here are weak references into the other stores.

// @host localhost:3003
// @BasePath /api/v1
// @schemes http

func main() {
	configPath := flag.String("config", "configs/enrollgrade.yaml", "path to config file")
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
	if err := migrator.MigrateFromDirectory("migrations/enrollgrade"); err != nil {
		lgr.Fatal().Err(err).Msg("Failed to run migrations")
	}

	if *seedData {
		if err := seed.EnrollmentStore(context.Background(), database.Pool, lgr); err != nil {
			lgr.Error().Err(err).Msg("Seeding finished with errors")
		}
	}

	enrollmentRepo := repositories.NewEnrollmentRepository(database.Pool)
	gradeRepo := repositories.NewGradeRepository(database.Pool)
	enrollmentService := services.NewEnrollmentService(enrollmentRepo)
	gradeService := services.NewGradeService(gradeRepo, enrollmentRepo)
	enrollmentController := controllers.NewEnrollmentController(enrollmentService, gradeService)

	router := server.NewRouter(cfg)
	routes.SetupEnrollmentRoutes(router, enrollmentController)

	srv := server.New(cfg, router, database.Pool, lgr)
	if err := srv.Run(); err != nil {
		lgr.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
}
