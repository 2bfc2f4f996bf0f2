package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dermatrack/backend/internal/catalog"
	"github.com/dermatrack/backend/internal/models"
	"github.com/dermatrack/backend/internal/testhelpers"
	"github.com/dermatrack/backend/internal/types"
)

func setupCatalogRouter(t *testing.T, isAdmin bool) (*gin.Engine, *testhelpers.MockCatalogService, uuid.UUID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalogService := new(testhelpers.MockCatalogService)
	authService := new(testhelpers.MockAuthService)
	userID := uuid.New()

	authService.On("ValidateToken", "valid-token").Return(&types.TokenClaims{
		UserID:   userID,
		Username: "testuser",
	}, nil)
	authService.On("GetUserByID", mock.Anything, userID).Return(&models.User{
		ID:      userID,
		IsAdmin: isAdmin,
	}, nil).Maybe()

	idx := catalog.MustNewIndex(catalog.DefinitionGroups())
	handler := NewCatalogHandler(idx, catalogService, authService)

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))

	return router, catalogService, userID
}

func TestGetCategoriesEndpoint(t *testing.T) {
	router, _, _ := setupCatalogRouter(t, false)

	w := doJSON(router, http.MethodGet, "/api/v1/catalog/categories", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Categories []CategoryResponse `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Categories, 4)
	assert.Equal(t, "food", resp.Categories[0].Category)
	assert.Equal(t, "Food Allergens", resp.Categories[0].CategoryLabel)
	assert.NotEmpty(t, resp.Categories[0].Allergens)
}

func TestGetLabelsEndpoint(t *testing.T) {
	router, _, _ := setupCatalogRouter(t, false)

	w := doJSON(router, http.MethodGet, "/api/v1/catalog/labels", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Labels map[string]string `json:"labels"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Peanut", resp.Labels["peanut"])
}

func TestListAllergensRejectsUnknownCategory(t *testing.T) {
	router, _, _ := setupCatalogRouter(t, false)

	w := doJSON(router, http.MethodGet, "/api/v1/catalog/allergens?category=mineral", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAllergensEndpoint(t *testing.T) {
	router, catalogService, _ := setupCatalogRouter(t, false)

	food := catalog.CategoryFood
	catalogService.On("ListAllergens", mock.Anything, &food, false).Return([]*models.Allergen{
		{ID: uuid.New(), Category: catalog.CategoryFood, AllergenKey: "peanut", IsActive: true},
	}, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/catalog/allergens?category=food", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Allergens []AllergenResponse `json:"allergens"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Allergens, 1)
	assert.Equal(t, "Peanut", resp.Allergens[0].Label)
	assert.Equal(t, "Food Allergens: Peanut", resp.Allergens[0].DisplayName)
}

func TestCreateAllergenRequiresAdmin(t *testing.T) {
	router, catalogService, _ := setupCatalogRouter(t, false)

	w := doJSON(router, http.MethodPost, "/api/v1/catalog/allergens", gin.H{
		"category":     "food",
		"allergen_key": "peanut",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	catalogService.AssertNotCalled(t, "CreateAllergen", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateAllergenAsAdmin(t *testing.T) {
	router, catalogService, _ := setupCatalogRouter(t, true)

	catalogService.On("CreateAllergen", mock.Anything, catalog.CategoryFood, "peanut").Return(&models.Allergen{
		ID:          uuid.New(),
		Category:    catalog.CategoryFood,
		AllergenKey: "peanut",
		IsActive:    true,
	}, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/catalog/allergens", gin.H{
		"category":     "food",
		"allergen_key": "peanut",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp AllergenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Food Allergens: Peanut", resp.DisplayName)
	catalogService.AssertExpectations(t)
}

func TestSetAllergenActiveEndpoint(t *testing.T) {
	router, catalogService, _ := setupCatalogRouter(t, true)

	id := uuid.New()
	catalogService.On("SetActive", mock.Anything, id, false).Return(&models.Allergen{
		ID:          id,
		Category:    catalog.CategoryFood,
		AllergenKey: "peanut",
		IsActive:    false,
	}, nil)

	w := doJSON(router, http.MethodPatch, "/api/v1/catalog/allergens/"+id.String()+"/active", gin.H{
		"is_active": false,
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp AllergenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.IsActive)
	catalogService.AssertExpectations(t)
}
