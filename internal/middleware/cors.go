// cors.go configures Cross-Origin Resource Sharing (CORS).
//
// The form at "/" is served from the same origin and doesn't need CORS. It
// matters for browser clients hosted elsewhere that call /api/v1/analyses
// directly, e.g. a separate frontend during development.
package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS returns configured CORS middleware.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders: []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After", RequestIDHeader, "Content-Length"},
		MaxAge:        12 * time.Hour, // Cache preflight responses
	})
}
