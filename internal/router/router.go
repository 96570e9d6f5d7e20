// Package router sets up all HTTP routes for the form and the API.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Shimizu-Technology/resume-ai/internal/handlers"
	"github.com/Shimizu-Technology/resume-ai/internal/middleware"
)

// Setup creates and configures the Gin router with all routes.
// The rate limiter is passed in so the caller can Stop it on shutdown.
func Setup(h *handlers.Handler, rateLimiter *middleware.RateLimiter, allowedOrigins []string) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(allowedOrigins))
	r.SetHTMLTemplate(handlers.FormTemplate())

	// --- Browser form ---
	r.GET("/", h.ShowForm)
	r.POST("/", rateLimiter.RateLimit(), h.SubmitForm)

	// --- Public read-only routes ---
	r.GET("/api/v1/health", h.HealthCheck)
	r.GET("/api/v1/modes", h.ListModes)

	// API Documentation
	r.GET("/api/docs", h.ServeSwaggerUI)
	r.GET("/api/docs/openapi.yaml", h.ServeOpenAPISpec)

	// --- Routes that spend generation quota ---
	limited := r.Group("/api/v1")
	limited.Use(rateLimiter.RateLimit())
	{
		limited.POST("/analyses", h.CreateAnalysis)
	}

	return r
}
