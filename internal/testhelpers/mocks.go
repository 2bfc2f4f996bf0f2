package testhelpers

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dermatrack/backend/internal/catalog"
	"github.com/dermatrack/backend/internal/models"
	"github.com/dermatrack/backend/internal/types"
)

// MockAuthService is a mock implementation of the IAuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	args := m.Called(ctx, name, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}

func (m *MockAuthService) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockCatalogService is a mock implementation of the ICatalogService interface
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) CreateAllergen(ctx context.Context, category catalog.Category, key string) (*models.Allergen, error) {
	args := m.Called(ctx, category, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Allergen), args.Error(1)
}

func (m *MockCatalogService) GetAllergen(ctx context.Context, id uuid.UUID) (*models.Allergen, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Allergen), args.Error(1)
}

func (m *MockCatalogService) ListAllergens(ctx context.Context, category *catalog.Category, activeOnly bool) ([]*models.Allergen, error) {
	args := m.Called(ctx, category, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Allergen), args.Error(1)
}

func (m *MockCatalogService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*models.Allergen, error) {
	args := m.Called(ctx, id, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Allergen), args.Error(1)
}

// MockAllergyService is a mock implementation of the IAllergyService interface
type MockAllergyService struct {
	mock.Mock
}

func (m *MockAllergyService) Save(ctx context.Context, ua *models.UserAllergy) error {
	args := m.Called(ctx, ua)
	return args.Error(0)
}

func (m *MockAllergyService) GetAllergy(ctx context.Context, userID, id uuid.UUID) (*models.UserAllergy, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserAllergy), args.Error(1)
}

func (m *MockAllergyService) ListAllergies(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*models.UserAllergy, error) {
	args := m.Called(ctx, userID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.UserAllergy), args.Error(1)
}

func (m *MockAllergyService) Deactivate(ctx context.Context, userID, id uuid.UUID) (*models.UserAllergy, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserAllergy), args.Error(1)
}
