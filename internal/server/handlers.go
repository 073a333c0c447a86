package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/calcconstru/calcconstru/internal/engine"
	"github.com/calcconstru/calcconstru/internal/export"
	"github.com/calcconstru/calcconstru/internal/project"
	"github.com/calcconstru/calcconstru/internal/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// feasibilityResponse bundles the echoed input with its computed figures
// and any input warnings.
type feasibilityResponse struct {
	Project  project.Project `json:"project"`
	Result   engine.Result   `json:"result"`
	Warnings []string        `json:"warnings,omitempty"`
}

func (s *Server) computeFeasibility(c *gin.Context) {
	var p project.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid project payload: %s", err)})
		return
	}
	p.Normalize()

	c.JSON(http.StatusOK, feasibilityResponse{
		Project:  p,
		Result:   engine.Compute(p),
		Warnings: p.Validate(),
	})
}

func (s *Server) listProjects(c *gin.Context) {
	projects, err := s.store.ListProjects(c.Request.Context())
	if err != nil {
		s.logger.Error("failed to list projects",
			zap.String("op", "server.listProjects"),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (s *Server) saveProject(c *gin.Context) {
	var p project.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid project payload: %s", err)})
		return
	}
	p.Normalize()

	if err := s.store.SaveProject(c.Request.Context(), &p); err != nil {
		s.logger.Error("failed to save project",
			zap.String("op", "server.saveProject"),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save project"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (s *Server) deleteProject(c *gin.Context) {
	err := s.store.DeleteProject(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
	case err != nil:
		s.logger.Error("failed to delete project",
			zap.String("op", "server.deleteProject"),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete project"})
	default:
		c.Status(http.StatusNoContent)
	}
}

func (s *Server) listLands(c *gin.Context) {
	lands, err := s.store.ListLands(c.Request.Context())
	if err != nil {
		s.logger.Error("failed to list lands",
			zap.String("op", "server.listLands"),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list lands"})
		return
	}
	c.JSON(http.StatusOK, lands)
}

func (s *Server) saveLand(c *gin.Context) {
	var l project.Land
	if err := c.ShouldBindJSON(&l); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid land payload: %s", err)})
		return
	}
	if l.Status == "" {
		l.Status = project.LandStatusAnalysis
	}

	if err := s.store.SaveLand(c.Request.Context(), &l); err != nil {
		s.logger.Error("failed to save land",
			zap.String("op", "server.saveLand"),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save land"})
		return
	}
	c.JSON(http.StatusCreated, l)
}

func (s *Server) deleteLand(c *gin.Context) {
	err := s.store.DeleteLand(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "land not found"})
	case err != nil:
		s.logger.Error("failed to delete land",
			zap.String("op", "server.deleteLand"),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete land"})
	default:
		c.Status(http.StatusNoContent)
	}
}

func (s *Server) analyze(c *gin.Context) {
	var p project.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid project payload: %s", err)})
		return
	}
	p.Normalize()

	analysis := s.advisor.Analyze(c.Request.Context(), p, engine.Compute(p))
	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}

func (s *Server) exportWorkbook(c *gin.Context) {
	var p project.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid project payload: %s", err)})
		return
	}
	p.Normalize()

	data, err := export.Workbook(p, engine.Compute(p))
	if err != nil {
		s.logger.Error("failed to build workbook",
			zap.String("op", "server.exportWorkbook"),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build workbook"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="viabilidade.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
