package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dermatrack/backend/internal/catalog"
)

// Allergen is one row of the admin-curated allergen catalog. Users select
// from these rows; they never create them. Rows are soft-disabled via
// IsActive rather than deleted so existing user allergies keep a valid
// reference.
type Allergen struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Category    catalog.Category `gorm:"size:15;not null;index;uniqueIndex:uniq_category_allergen" json:"category"`
	AllergenKey string           `gorm:"size:50;not null;index;uniqueIndex:uniq_category_allergen" json:"allergen_key"`
	IsActive    bool             `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func (Allergen) TableName() string {
	return "allergens"
}

func (a *Allergen) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Label resolves the allergen key to its display label via the catalog
// index. Keys missing from the index fall back to the raw key so a stale
// row still renders something.
func (a *Allergen) Label(idx *catalog.Index) string {
	if label, ok := idx.Label(a.AllergenKey); ok {
		return label
	}
	return a.AllergenKey
}

// DisplayName renders the row as "Category Label: Allergen Label", e.g.
// "Food Allergens: Peanut".
func (a *Allergen) DisplayName(idx *catalog.Index) string {
	if a.AllergenKey == "" {
		return fmt.Sprintf("%s: [No Allergen Selected]", a.Category.Display())
	}
	return fmt.Sprintf("%s: %s", a.Category.Display(), a.Label(idx))
}
