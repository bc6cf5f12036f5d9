package main

import (
	"flag"
	"os"
	"time"

	"github.com/IqbalAbhipraya/eai-tubes/internal/app/controllers"
	"github.com/IqbalAbhipraya/eai-tubes/internal/app/routes"
	"github.com/IqbalAbhipraya/eai-tubes/internal/config"
	"github.com/IqbalAbhipraya/eai-tubes/internal/federation"
	"github.com/IqbalAbhipraya/eai-tubes/internal/federation/clients"
	"github.com/IqbalAbhipraya/eai-tubes/internal/middleware"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/auth"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/helpers"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/logger"
	"github.com/IqbalAbhipraya/eai-tubes/internal/server"
)

// @title Campus Gateway API
// @version 1.0
// @description Federates the student, course and enrollment stores into joined read views and orchestrated writes. Owns no data of its own.

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT viewer token

func main() {
	configPath := flag.String("config", "configs/gateway.yaml", "path to config file")
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

	clientTimeout := helpers.ParseDuration(cfg.Stores.ClientTimeout, 10*time.Second)
	studentStore := clients.NewStudentClient(cfg.Stores.StudentURL, clientTimeout)
	courseStore := clients.NewCourseClient(cfg.Stores.CourseURL, clientTimeout)
	enrollmentStore := clients.NewEnrollmentClient(cfg.Stores.EnrollmentURL, clientTimeout)

	orchestrator := federation.NewOrchestrator(studentStore, courseStore, enrollmentStore, lgr)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 12*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})
	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	gatewayController := controllers.NewGatewayController(orchestrator)

	router := server.NewRouter(cfg)
	router.Use(middleware.CORS())
	routes.SetupGatewayRoutes(router, gatewayController, authMiddleware)

	srv := server.New(cfg, router, nil, lgr)
	if err := srv.Run(); err != nil {
		lgr.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
}
