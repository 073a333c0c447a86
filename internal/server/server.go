// Package server exposes the feasibility engine, the persistence gateway,
// and the narrative advisor over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/calcconstru/calcconstru/internal/advisor"
	"github.com/calcconstru/calcconstru/internal/config"
	"github.com/calcconstru/calcconstru/internal/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Server wires the HTTP API around its collaborators.
type Server struct {
	store   store.Store
	advisor *advisor.Client
	logger  *zap.Logger
}

// New builds a Server around the given collaborators.
func New(s store.Store, a *advisor.Client, logger *zap.Logger) *Server {
	return &Server{store: s, advisor: a, logger: logger}
}

// Router builds the gin engine with all API routes registered.
func (s *Server) Router(cfg config.ServerConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestLogger())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	api := router.Group("/api")
	{
		api.POST("/feasibility", s.computeFeasibility)

		api.GET("/projects", s.listProjects)
		api.POST("/projects", s.saveProject)
		api.DELETE("/projects/:id", s.deleteProject)

		api.GET("/lands", s.listLands)
		api.POST("/lands", s.saveLand)
		api.DELETE("/lands/:id", s.deleteLand)

		api.POST("/analysis", s.analyze)
		api.POST("/export", s.exportWorkbook)

		api.GET("/health", s.health)
		api.GET("/version", s.version)
	}

	return router
}

// HTTPServer wraps the router in an http.Server with sane timeouts.
func (s *Server) HTTPServer(cfg config.ServerConfig) *http.Server {
	return &http.Server{
		Addr:         cfg.Address,
		Handler:      s.Router(cfg),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request handled",
			zap.String("op", "server.request"),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": Version})
}
