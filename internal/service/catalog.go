package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dermatrack/backend/internal/catalog"
	"github.com/dermatrack/backend/internal/models"
)

// CatalogService handles admin operations on the allergen catalog.
type CatalogService struct {
	db      *gorm.DB
	catalog *catalog.Index
}

// Ensure CatalogService implements ICatalogService
var _ ICatalogService = (*CatalogService)(nil)

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(db *gorm.DB, idx *catalog.Index) *CatalogService {
	return &CatalogService{
		db:      db,
		catalog: idx,
	}
}

// CreateAllergen adds a catalog row. The key is shape-checked only; it is
// not required to appear in the static definitions, label resolution
// falls back to the raw key for unknown keys. Duplicate
// (category, allergen_key) pairs are rejected by the store's unique
// constraint.
func (s *CatalogService) CreateAllergen(ctx context.Context, category catalog.Category, key string) (*models.Allergen, error) {
	if !category.Valid() {
		return nil, shapeError("category", "unknown category")
	}
	if key == "" {
		return nil, shapeError("allergen_key", "allergen key is required")
	}
	if len(key) > 50 {
		return nil, shapeError("allergen_key", "allergen key exceeds 50 characters")
	}

	allergen := models.Allergen{
		Category:    category,
		AllergenKey: key,
		IsActive:    true,
	}
	if err := s.db.WithContext(ctx).Create(&allergen).Error; err != nil {
		return nil, translateUniqueness(err, "allergen")
	}
	return &allergen, nil
}

// GetAllergen retrieves a catalog row by ID.
func (s *CatalogService) GetAllergen(ctx context.Context, id uuid.UUID) (*models.Allergen, error) {
	var allergen models.Allergen
	if err := s.db.WithContext(ctx).First(&allergen, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &allergen, nil
}

// ListAllergens lists catalog rows, optionally scoped to one category
// and/or active rows only, ordered the way the catalog presents them.
func (s *CatalogService) ListAllergens(ctx context.Context, category *catalog.Category, activeOnly bool) ([]*models.Allergen, error) {
	query := s.db.WithContext(ctx)
	if category != nil {
		query = query.Where("category = ?", *category)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var rows []models.Allergen
	if err := query.Order("category ASC, allergen_key ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]*models.Allergen, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// SetActive soft-enables or soft-disables a catalog row. Rows are never
// hard-deleted: user allergies keep their reference and their writes are
// gated on the row being active again.
func (s *CatalogService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*models.Allergen, error) {
	var allergen models.Allergen
	if err := s.db.WithContext(ctx).First(&allergen, "id = ?", id).Error; err != nil {
		return nil, err
	}
	allergen.IsActive = active
	if err := s.db.WithContext(ctx).Save(&allergen).Error; err != nil {
		return nil, err
	}
	return &allergen, nil
}
