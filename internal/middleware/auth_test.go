package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dermatrack/backend/internal/models"
	"github.com/dermatrack/backend/internal/testhelpers"
	"github.com/dermatrack/backend/internal/types"
)

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	userID := uuid.New()
	authService := new(testhelpers.MockAuthService)
	authService.On("ValidateToken", "good").Return(&types.TokenClaims{
		UserID:   userID,
		Username: "testuser",
	}, nil)
	authService.On("ValidateToken", "bad").Return(nil, assert.AnError)

	router := gin.New()
	router.GET("/protected", AuthMiddleware(authService), func(c *gin.Context) {
		got, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": got.(uuid.UUID).String()})
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "good", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"invalid token", "Bearer bad", http.StatusUnauthorized},
		{"valid token", "Bearer good", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Contains(t, w.Body.String(), userID.String())
			}
		})
	}
}

func TestAdminRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)

	adminID := uuid.New()
	regularID := uuid.New()

	authService := new(testhelpers.MockAuthService)
	authService.On("GetUserByID", mock.Anything, adminID).Return(&models.User{ID: adminID, IsAdmin: true}, nil)
	authService.On("GetUserByID", mock.Anything, regularID).Return(&models.User{ID: regularID, IsAdmin: false}, nil)

	newRouter := func(id *uuid.UUID) *gin.Engine {
		router := gin.New()
		router.GET("/admin", func(c *gin.Context) {
			if id != nil {
				c.Set("user_id", *id)
			}
		}, AdminRequired(authService), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return router
	}

	do := func(router *gin.Engine) int {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, do(newRouter(&adminID)))
	assert.Equal(t, http.StatusForbidden, do(newRouter(&regularID)))
	assert.Equal(t, http.StatusUnauthorized, do(newRouter(nil)))
}
