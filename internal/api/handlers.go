package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dermatrack/backend/internal/catalog"
	"github.com/dermatrack/backend/internal/middleware"
	"github.com/dermatrack/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "DermaTrack API is running",
		"version": "v1.0.0",
	})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(
	router *gin.Engine,
	idx *catalog.Index,
	authService service.IAuthService,
	catalogService service.ICatalogService,
	allergyService service.IAllergyService,
	writeLimiter *middleware.RateLimiter,
) {
	// Health check endpoint (no auth required)
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	v1 := router.Group("/api/v1")

	authHandler := NewAuthHandler(authService)
	authHandler.RegisterRoutes(v1)

	catalogHandler := NewCatalogHandler(idx, catalogService, authService)
	catalogHandler.RegisterRoutes(v1)

	allergyHandler := NewAllergyHandler(idx, allergyService, authService, writeLimiter)
	allergyHandler.RegisterRoutes(v1)
}

// respondServiceError maps service-layer failures onto HTTP statuses:
// uniqueness conflicts to 409, other validation failures to 400, missing
// rows to 404, everything else to 500.
func respondServiceError(c *gin.Context, err error) {
	if verr, ok := service.AsValidationError(err); ok {
		status := http.StatusBadRequest
		if verr.Kind == service.UniquenessViolation {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{
			"error": verr.Message,
			"field": verr.Field,
			"kind":  string(verr.Kind),
		})
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
