// Package handlers contains HTTP handler functions for the web form and API.
//
// Go Pattern: Handlers in Gin receive a *gin.Context which provides:
// - Request data (params, form fields, uploaded files, headers)
// - Response methods (JSON, HTML, Data, Status)
// - Middleware data (c.Get/c.Set), e.g. the request ID
//
// We group related handlers into a struct (Handler) that holds shared dependencies.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shimizu-Technology/resume-ai/internal/models"
	"github.com/Shimizu-Technology/resume-ai/internal/prompts"
	"github.com/Shimizu-Technology/resume-ai/internal/services/analysis"
)

// Options carries the settings handlers report or enforce but don't own.
type Options struct {
	Version        string
	Provider       string
	Model          string
	MaxUploadBytes int64
	RetryAfter     time.Duration // Advertised on 503 responses
}

// Handler holds shared dependencies for all HTTP handlers.
// Go Pattern: Dependency injection via struct fields. Instead of global
// variables or service locators, we pass dependencies explicitly.
// This makes testing easy — just create a Handler around a mock client.
type Handler struct {
	Analysis *analysis.Service
	Catalog  *prompts.Catalog
	opts     Options
}

// NewHandler creates a new handler with all dependencies.
func NewHandler(svc *analysis.Service, opts Options) *Handler {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = defaultMaxUploadBytes
	}
	if opts.RetryAfter <= 0 {
		opts.RetryAfter = 10 * time.Second
	}
	return &Handler{
		Analysis: svc,
		Catalog:  svc.Catalog(),
		opts:     opts,
	}
}

// HealthCheck returns the API health status. It never calls the
// generation service, so it stays cheap enough for load balancer probes.
// GET /api/v1/health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:   "ok",
		Version:  h.opts.Version,
		Provider: h.opts.Provider,
		Model:    h.opts.Model,
	})
}

// ListModes returns the available actions in button order.
// GET /api/v1/modes
func (h *Handler) ListModes(c *gin.Context) {
	templates := h.Catalog.All()
	modes := make([]models.ModeInfo, 0, len(templates))
	for _, t := range templates {
		modes = append(modes, models.ModeInfo{
			Mode:   t.Mode,
			Button: t.Button,
			Label:  t.Label,
		})
	}
	c.JSON(http.StatusOK, modes)
}
