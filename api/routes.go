package api

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/trajlab/annotator-api/api/annotations"
	"github.com/trajlab/annotator-api/api/health"
	"github.com/trajlab/annotator-api/api/progress"
	"github.com/trajlab/annotator-api/api/types"
	"github.com/trajlab/annotator-api/api/version"
	_ "github.com/trajlab/annotator-api/docs/swagger"
	"github.com/trajlab/annotator-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)
	progress.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	if deps == nil {
		return fmt.Errorf("handler dependencies are not set")
	}

	// Load config for API routes
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Static catalog and HTML entry points served for the client UI
	if cfg.Videos.CatalogPath != "" {
		engine.StaticFile("/videos.json", cfg.Videos.CatalogPath)
	}
	if cfg.Videos.PublicDir != "" {
		engine.StaticFile("/overview", filepath.Join(cfg.Videos.PublicDir, "overview.html"))
		engine.StaticFile("/annotate.html", filepath.Join(cfg.Videos.PublicDir, "annotate.html"))
	}

	// Annotation submission with per-client rate limiting
	annotationGroup := engine.Group("/")
	if cfg.RateLimiting.Enabled {
		annotationGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized,
			cfg.RateLimiting.SaveRPS, cfg.RateLimiting.SaveBurst))
	}
	annotations.RegisterRoutes(annotationGroup, deps)

	return nil
}
