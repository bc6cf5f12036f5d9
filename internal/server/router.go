package server

import (
	"github.com/gin-gonic/gin"

	"github.com/IqbalAbhipraya/eai-tubes/internal/config"
	"github.com/IqbalAbhipraya/eai-tubes/internal/middleware"
)

// NewRouter builds a gin engine with the baseline middleware every service
// carries: panic recovery, request ids, and one structured log line per
// request.
func NewRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())

	return router
}
