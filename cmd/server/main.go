// Package main is the entry point for the Resume AI server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Shimizu-Technology/resume-ai/internal/config"
	"github.com/Shimizu-Technology/resume-ai/internal/handlers"
	"github.com/Shimizu-Technology/resume-ai/internal/middleware"
	"github.com/Shimizu-Technology/resume-ai/internal/prompts"
	"github.com/Shimizu-Technology/resume-ai/internal/router"
	"github.com/Shimizu-Technology/resume-ai/internal/services/analysis"
	"github.com/Shimizu-Technology/resume-ai/internal/services/provider"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("🚀 Resume AI %s starting...", Version)

	// Step 1: Load .env (optional — real environment variables win)
	if err := godotenv.Load(); err != nil {
		log.Println("ℹ️  No .env file found, using environment only")
	}

	// Step 2: Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	log.Printf("📋 Config loaded: port=%s, provider=%s, model=%s, gin_mode=%s", cfg.Port, cfg.Provider, cfg.Model(), cfg.GinMode)
	log.Printf("⏱️  Generation pacing: %.1f/min (burst %d), timeout %s", cfg.GenerationRatePerMinute, cfg.GenerationBurst, cfg.GenerationTimeout)

	// gin reads GIN_MODE at init, before .env is loaded; apply it explicitly.
	gin.SetMode(cfg.GinMode)

	// Step 3: Create Services
	ctx := context.Background()
	generator, err := provider.NewService(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Failed to create %s client: %v", cfg.Provider, err)
	}
	log.Printf("✅ %s client ready", cfg.Provider)

	catalog := prompts.MustLoad()
	analyzer := analysis.New(generator, catalog)
	log.Printf("✅ %d instruction templates loaded", len(catalog.All()))

	rateLimiter := middleware.NewRateLimiter(cfg.ClientRateLimit)
	defer rateLimiter.Stop()
	if rateLimiter.Enabled() {
		log.Printf("✅ Client rate limit: %d requests/hour per IP", cfg.ClientRateLimit)
	} else {
		log.Println("⚠️  Client rate limiting disabled (set CLIENT_RATE_LIMIT to enable)")
	}

	// Step 4: Setup HTTP Router
	h := handlers.NewHandler(analyzer, handlers.Options{
		Version:        Version,
		Provider:       cfg.Provider,
		Model:          cfg.Model(),
		MaxUploadBytes: cfg.MaxUploadBytes,
		RetryAfter:     cfg.RetryAfter(),
	})
	r := router.Setup(h, rateLimiter, cfg.AllowedOrigins)

	// Step 5: Start the HTTP Server
	// WriteTimeout has to outlast a full generation call plus the wait for a
	// limiter token.
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.GenerationTimeout + 2*time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server listening on http://localhost:%s", cfg.Port)
		log.Printf("📖 API docs: http://localhost:%s/api/docs", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	// Step 6: Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Printf("🛑 Received signal %v, shutting down gracefully...", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}

	log.Println("👋 Server stopped. Goodbye!")
}
