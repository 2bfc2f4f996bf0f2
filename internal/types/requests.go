package types

import "github.com/google/uuid"

// RegisterRequest is the payload for user registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateAllergenRequest is the admin payload for adding a catalog row
type CreateAllergenRequest struct {
	Category    string `json:"category" binding:"required"`
	AllergenKey string `json:"allergen_key" binding:"required"`
}

// SetAllergenActiveRequest toggles a catalog row's active flag
type SetAllergenActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// CreateUserAllergyRequest is the payload for recording an allergy
type CreateUserAllergyRequest struct {
	AllergenID          uuid.UUID              `json:"allergen_id" binding:"required"`
	SeverityLevel       string                 `json:"severity_level"`
	IsConfirmed         bool                   `json:"is_confirmed"`
	SymptomOnsetDate    *string                `json:"symptom_onset_date"`
	SourceInfo          string                 `json:"source_info"`
	UserReactionDetails map[string]interface{} `json:"user_reaction_details"`
}

// UpdateUserAllergyRequest is the payload for mutating an existing
// allergy row. Nil fields are left untouched.
type UpdateUserAllergyRequest struct {
	SeverityLevel       *string                `json:"severity_level"`
	IsConfirmed         *bool                  `json:"is_confirmed"`
	SymptomOnsetDate    *string                `json:"symptom_onset_date"`
	SourceInfo          *string                `json:"source_info"`
	UserReactionDetails map[string]interface{} `json:"user_reaction_details"`
	AdminNotes          map[string]interface{} `json:"admin_notes"`
	IsActive            *bool                  `json:"is_active"`
}
