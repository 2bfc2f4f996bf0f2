package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dermatrack/backend/internal/catalog"
	"github.com/dermatrack/backend/internal/models"
	"github.com/dermatrack/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// ICatalogService defines the interface for allergen catalog administration
type ICatalogService interface {
	CreateAllergen(ctx context.Context, category catalog.Category, key string) (*models.Allergen, error)
	GetAllergen(ctx context.Context, id uuid.UUID) (*models.Allergen, error)
	ListAllergens(ctx context.Context, category *catalog.Category, activeOnly bool) ([]*models.Allergen, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*models.Allergen, error)
}

// IAllergyService defines the interface for user allergy operations
type IAllergyService interface {
	Save(ctx context.Context, ua *models.UserAllergy) error
	GetAllergy(ctx context.Context, userID, id uuid.UUID) (*models.UserAllergy, error)
	ListAllergies(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*models.UserAllergy, error)
	Deactivate(ctx context.Context, userID, id uuid.UUID) (*models.UserAllergy, error)
}
