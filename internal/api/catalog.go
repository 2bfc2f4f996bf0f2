package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dermatrack/backend/internal/catalog"
	"github.com/dermatrack/backend/internal/middleware"
	"github.com/dermatrack/backend/internal/service"
	"github.com/dermatrack/backend/internal/types"
)

// CatalogHandler exposes the allergen catalog: read-only index surfaces
// for everyone, row administration for admins.
type CatalogHandler struct {
	index          *catalog.Index
	catalogService service.ICatalogService
	authService    service.IAuthService
}

func NewCatalogHandler(idx *catalog.Index, catalogService service.ICatalogService, authService service.IAuthService) *CatalogHandler {
	return &CatalogHandler{
		index:          idx,
		catalogService: catalogService,
		authService:    authService,
	}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	cat := router.Group("/catalog")
	cat.Use(middleware.AuthMiddleware(h.authService))
	{
		cat.GET("/categories", h.GetCategories)
		cat.GET("/labels", h.GetLabels)
		cat.GET("/allergens", h.ListAllergens)
	}

	admin := router.Group("/catalog")
	admin.Use(middleware.AuthMiddleware(h.authService), middleware.AdminRequired(h.authService))
	{
		admin.POST("/allergens", h.CreateAllergen)
		admin.PATCH("/allergens/:id/active", h.SetAllergenActive)
	}
}

// GetCategories returns every category with its ordered allergen choices,
// the shape selection forms consume.
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	out := make([]CategoryResponse, 0, len(catalog.Categories()))
	for _, cat := range catalog.Categories() {
		out = append(out, CategoryResponse{
			Category:      string(cat),
			CategoryLabel: cat.Display(),
			Allergens:     h.index.CategoryAllergens(cat),
		})
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

// GetLabels returns the flat key -> label map across all categories.
func (h *CatalogHandler) GetLabels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"labels": h.index.Labels()})
}

func (h *CatalogHandler) ListAllergens(c *gin.Context) {
	var categoryFilter *catalog.Category
	if raw := c.Query("category"); raw != "" {
		cat := catalog.Category(raw)
		if !cat.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
			return
		}
		categoryFilter = &cat
	}
	activeOnly := c.Query("active") == "true"

	allergens, err := h.catalogService.ListAllergens(c.Request.Context(), categoryFilter, activeOnly)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]AllergenResponse, len(allergens))
	for i, a := range allergens {
		out[i] = newAllergenResponse(a, h.index)
	}
	c.JSON(http.StatusOK, gin.H{"allergens": out})
}

func (h *CatalogHandler) CreateAllergen(c *gin.Context) {
	var req types.CreateAllergenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	allergen, err := h.catalogService.CreateAllergen(c.Request.Context(), catalog.Category(req.Category), req.AllergenKey)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newAllergenResponse(allergen, h.index))
}

func (h *CatalogHandler) SetAllergenActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid allergen id"})
		return
	}

	var req types.SetAllergenActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	allergen, err := h.catalogService.SetActive(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newAllergenResponse(allergen, h.index))
}
