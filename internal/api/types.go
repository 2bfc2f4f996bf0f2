package api

import (
	"time"

	"github.com/dermatrack/backend/internal/catalog"
	"github.com/dermatrack/backend/internal/models"
)

// CategoryResponse is one category with its ordered allergen choices
type CategoryResponse struct {
	Category      string               `json:"category"`
	CategoryLabel string               `json:"category_label"`
	Allergens     []catalog.Definition `json:"allergens"`
}

// AllergenResponse is a catalog row with its resolved display strings
type AllergenResponse struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	AllergenKey string    `json:"allergen_key"`
	Label       string    `json:"label"`
	DisplayName string    `json:"display_name"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newAllergenResponse(a *models.Allergen, idx *catalog.Index) AllergenResponse {
	return AllergenResponse{
		ID:          a.ID.String(),
		Category:    string(a.Category),
		AllergenKey: a.AllergenKey,
		Label:       a.Label(idx),
		DisplayName: a.DisplayName(idx),
		IsActive:    a.IsActive,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// UserAllergyResponse is a relationship row with display labels resolved
type UserAllergyResponse struct {
	ID                  string                 `json:"id"`
	AllergenID          string                 `json:"allergen_id"`
	Allergen            *AllergenResponse      `json:"allergen,omitempty"`
	SeverityLevel       string                 `json:"severity_level"`
	SeverityDisplay     string                 `json:"severity_display,omitempty"`
	IsConfirmed         bool                   `json:"is_confirmed"`
	SymptomOnsetDate    *string                `json:"symptom_onset_date,omitempty"`
	SourceInfo          string                 `json:"source_info"`
	SourceDisplay       string                 `json:"source_display,omitempty"`
	UserReactionDetails map[string]interface{} `json:"user_reaction_details"`
	AdminNotes          map[string]interface{} `json:"admin_notes"`
	IsActive            bool                   `json:"is_active"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
}

func newUserAllergyResponse(ua *models.UserAllergy, idx *catalog.Index) UserAllergyResponse {
	resp := UserAllergyResponse{
		ID:                  ua.ID.String(),
		AllergenID:          ua.AllergenID.String(),
		SeverityLevel:       string(ua.SeverityLevel),
		IsConfirmed:         ua.IsConfirmed,
		SourceInfo:          string(ua.SourceInfo),
		UserReactionDetails: ua.UserReactionDetails,
		AdminNotes:          ua.AdminNotes,
		IsActive:            ua.IsActive,
		CreatedAt:           ua.CreatedAt,
		UpdatedAt:           ua.UpdatedAt,
	}
	if ua.SeverityLevel != "" {
		resp.SeverityDisplay = ua.SeverityLevel.Display()
	}
	if ua.SourceInfo != "" {
		resp.SourceDisplay = ua.SourceInfo.Display()
	}
	if ua.SymptomOnsetDate != nil {
		onset := ua.SymptomOnsetDate.Format("2006-01-02")
		resp.SymptomOnsetDate = &onset
	}
	if ua.Allergen != nil {
		allergen := newAllergenResponse(ua.Allergen, idx)
		resp.Allergen = &allergen
	}
	return resp
}
