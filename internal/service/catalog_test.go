package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dermatrack/backend/internal/catalog"
	"github.com/dermatrack/backend/internal/testhelpers"
)

func setupCatalogTest(t *testing.T) *CatalogService {
	db := testhelpers.SetupSQLiteDB(t)
	idx := catalog.MustNewIndex(catalog.DefinitionGroups())
	return NewCatalogService(db, idx)
}

func TestCreateAllergen(t *testing.T) {
	svc := setupCatalogTest(t)
	ctx := context.Background()

	allergen, err := svc.CreateAllergen(ctx, catalog.CategoryFood, "peanut")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, allergen.ID)
	assert.True(t, allergen.IsActive)
	assert.Equal(t, "peanut", allergen.AllergenKey)
}

func TestCreateAllergenAcceptsUnknownKey(t *testing.T) {
	svc := setupCatalogTest(t)

	// Keys outside the static definitions are allowed; label resolution
	// falls back to the raw key
	allergen, err := svc.CreateAllergen(context.Background(), catalog.CategoryOther, "house_blend")
	require.NoError(t, err)
	assert.Equal(t, "house_blend", allergen.Label(svc.catalog))
}

func TestCreateAllergenRejectsBadShape(t *testing.T) {
	svc := setupCatalogTest(t)
	ctx := context.Background()

	_, err := svc.CreateAllergen(ctx, catalog.Category("mineral"), "quartz")
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, ShapeViolation, verr.Kind)
	assert.Equal(t, "category", verr.Field)

	_, err = svc.CreateAllergen(ctx, catalog.CategoryFood, "")
	verr, ok = AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, ShapeViolation, verr.Kind)

	_, err = svc.CreateAllergen(ctx, catalog.CategoryFood, strings.Repeat("x", 51))
	verr, ok = AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, ShapeViolation, verr.Kind)
	assert.Equal(t, "allergen_key", verr.Field)
}

func TestCreateAllergenRejectsDuplicatePair(t *testing.T) {
	svc := setupCatalogTest(t)
	ctx := context.Background()

	_, err := svc.CreateAllergen(ctx, catalog.CategoryFood, "peanut")
	require.NoError(t, err)

	_, err = svc.CreateAllergen(ctx, catalog.CategoryFood, "peanut")
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, UniquenessViolation, verr.Kind)

	// Same key under another category is a distinct catalog row
	_, err = svc.CreateAllergen(ctx, catalog.CategoryContact, "peanut")
	assert.NoError(t, err)
}

func TestListAllergens(t *testing.T) {
	svc := setupCatalogTest(t)
	ctx := context.Background()

	_, err := svc.CreateAllergen(ctx, catalog.CategoryFood, "soy")
	require.NoError(t, err)
	_, err = svc.CreateAllergen(ctx, catalog.CategoryFood, "peanut")
	require.NoError(t, err)
	nickel, err := svc.CreateAllergen(ctx, catalog.CategoryContact, "nickel")
	require.NoError(t, err)
	_, err = svc.SetActive(ctx, nickel.ID, false)
	require.NoError(t, err)

	all, err := svc.ListAllergens(ctx, nil, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	food := catalog.CategoryFood
	foodOnly, err := svc.ListAllergens(ctx, &food, false)
	require.NoError(t, err)
	require.Len(t, foodOnly, 2)
	// Ordered by key within the category
	assert.Equal(t, "peanut", foodOnly[0].AllergenKey)
	assert.Equal(t, "soy", foodOnly[1].AllergenKey)

	activeOnly, err := svc.ListAllergens(ctx, nil, true)
	require.NoError(t, err)
	assert.Len(t, activeOnly, 2)
}

func TestSetActiveToggles(t *testing.T) {
	svc := setupCatalogTest(t)
	ctx := context.Background()

	allergen, err := svc.CreateAllergen(ctx, catalog.CategoryInhalant, "ragweed")
	require.NoError(t, err)

	disabled, err := svc.SetActive(ctx, allergen.ID, false)
	require.NoError(t, err)
	assert.False(t, disabled.IsActive)

	enabled, err := svc.SetActive(ctx, allergen.ID, true)
	require.NoError(t, err)
	assert.True(t, enabled.IsActive)

	_, err = svc.SetActive(ctx, uuid.New(), false)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
