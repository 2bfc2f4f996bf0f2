package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dermatrack/backend/config"
	"github.com/dermatrack/backend/internal/api"
	"github.com/dermatrack/backend/internal/catalog"
	"github.com/dermatrack/backend/internal/database"
	"github.com/dermatrack/backend/internal/middleware"
	"github.com/dermatrack/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
}

// New creates a new server instance wired to the catalog index and the
// allergy services.
func New(db *gorm.DB, idx *catalog.Index, cfg *config.Config) *Server {
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Initialize services
	authService := service.NewAuthService(db, cfg.JWTSecret)
	catalogService := service.NewCatalogService(db, idx)
	allergyService := service.NewAllergyService(db, idx)

	// Rate limiting is best-effort: run without it if Redis is down
	var writeLimiter *middleware.RateLimiter
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Warning: failed to connect to Redis for rate limiting: %v", err)
	} else {
		writeLimiter = middleware.NewAllergyWriteRateLimiter(redisClient)
	}

	// Register routes
	api.RegisterRoutes(router, idx, authService, catalogService, allergyService, writeLimiter)

	return &Server{
		router: router,
		db:     db,
	}
}

// Start starts the server and blocks until shutdown
func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}

	// Start server in a goroutine
	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.http.Shutdown(ctx)
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
