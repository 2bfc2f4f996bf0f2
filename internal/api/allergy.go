package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dermatrack/backend/internal/catalog"
	"github.com/dermatrack/backend/internal/middleware"
	"github.com/dermatrack/backend/internal/models"
	"github.com/dermatrack/backend/internal/service"
	"github.com/dermatrack/backend/internal/types"
)

// AllergyHandler exposes a user's own allergy rows. All writes funnel
// into AllergyService.Save, which runs the validation pipeline.
type AllergyHandler struct {
	index          *catalog.Index
	allergyService service.IAllergyService
	authService    service.IAuthService
	writeLimiter   *middleware.RateLimiter
}

func NewAllergyHandler(idx *catalog.Index, allergyService service.IAllergyService, authService service.IAuthService, writeLimiter *middleware.RateLimiter) *AllergyHandler {
	return &AllergyHandler{
		index:          idx,
		allergyService: allergyService,
		authService:    authService,
		writeLimiter:   writeLimiter,
	}
}

func (h *AllergyHandler) RegisterRoutes(router *gin.RouterGroup) {
	allergies := router.Group("/profile/allergies")
	allergies.Use(middleware.AuthMiddleware(h.authService))
	{
		allergies.GET("", h.ListAllergies)
		allergies.GET("/:id", h.GetAllergy)

		writes := allergies.Group("")
		if h.writeLimiter != nil {
			writes.Use(h.writeLimiter.RateLimitMiddleware())
		}
		{
			writes.POST("", h.CreateAllergy)
			writes.PUT("/:id", h.UpdateAllergy)
			writes.DELETE("/:id", h.DeleteAllergy)
		}
	}
}

func (h *AllergyHandler) ListAllergies(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	activeOnly := c.Query("active") == "true"
	rows, err := h.allergyService.ListAllergies(c.Request.Context(), userID, activeOnly)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]UserAllergyResponse, len(rows))
	for i, ua := range rows {
		out[i] = newUserAllergyResponse(ua, h.index)
	}
	c.JSON(http.StatusOK, gin.H{"allergies": out})
}

func (h *AllergyHandler) GetAllergy(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid allergy id"})
		return
	}

	ua, err := h.allergyService.GetAllergy(c.Request.Context(), userID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserAllergyResponse(ua, h.index))
}

func (h *AllergyHandler) CreateAllergy(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateUserAllergyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ua := models.UserAllergy{
		UserID:              userID,
		AllergenID:          req.AllergenID,
		SeverityLevel:       models.SeverityLevel(req.SeverityLevel),
		IsConfirmed:         req.IsConfirmed,
		SourceInfo:          models.SourceInfo(req.SourceInfo),
		UserReactionDetails: req.UserReactionDetails,
		IsActive:            true,
	}
	if ua.UserReactionDetails == nil {
		ua.UserReactionDetails = models.JSONBMap{}
	}
	if ua.AdminNotes == nil {
		ua.AdminNotes = models.JSONBMap{}
	}
	if req.SymptomOnsetDate != nil {
		onset, err := parseOnsetDate(*req.SymptomOnsetDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid symptom_onset_date, expected YYYY-MM-DD"})
			return
		}
		ua.SymptomOnsetDate = onset
	}

	if err := h.allergyService.Save(c.Request.Context(), &ua); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newUserAllergyResponse(&ua, h.index))
}

func (h *AllergyHandler) UpdateAllergy(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid allergy id"})
		return
	}

	var req types.UpdateUserAllergyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ua, err := h.allergyService.GetAllergy(c.Request.Context(), userID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if req.SeverityLevel != nil {
		ua.SeverityLevel = models.SeverityLevel(*req.SeverityLevel)
	}
	if req.IsConfirmed != nil {
		ua.IsConfirmed = *req.IsConfirmed
	}
	if req.SymptomOnsetDate != nil {
		onset, err := parseOnsetDate(*req.SymptomOnsetDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid symptom_onset_date, expected YYYY-MM-DD"})
			return
		}
		ua.SymptomOnsetDate = onset
	}
	if req.SourceInfo != nil {
		ua.SourceInfo = models.SourceInfo(*req.SourceInfo)
	}
	if req.UserReactionDetails != nil {
		ua.UserReactionDetails = req.UserReactionDetails
	}
	if req.AdminNotes != nil {
		// Admin notes are staff-only state
		user, err := h.authService.GetUserByID(c.Request.Context(), userID)
		if err != nil || !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required to set admin notes"})
			return
		}
		ua.AdminNotes = req.AdminNotes
	}
	if req.IsActive != nil {
		ua.IsActive = *req.IsActive
	}

	// Detach the preloaded association so the save only touches the row
	ua.Allergen = nil

	if err := h.allergyService.Save(c.Request.Context(), ua); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserAllergyResponse(ua, h.index))
}

// DeleteAllergy deactivates the row; relationship rows are never hard
// deleted through the API.
func (h *AllergyHandler) DeleteAllergy(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid allergy id"})
		return
	}

	ua, err := h.allergyService.Deactivate(c.Request.Context(), userID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserAllergyResponse(ua, h.index))
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}
	return userID, true
}

func parseOnsetDate(raw string) (*time.Time, error) {
	onset, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &onset, nil
}
