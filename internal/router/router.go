package router

import (
	"github.com/gin-gonic/gin"

	"procura/internal/config"
	"procura/internal/handler"
	"procura/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	extractH *handler.ExtractHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Multipart bodies beyond this stay on disk for the request's lifetime;
	// the service enforces the per-file ceiling.
	r.MaxMultipartMemory = cfg.Upload.MaxFileSizeBytes()

	r.GET("/healthz", healthH.Liveness)

	v1 := r.Group("/api/v1")
	v1.POST("/extract", extractH.Extract)
	v1.POST("/export", exportH.Export)

	return r
}
