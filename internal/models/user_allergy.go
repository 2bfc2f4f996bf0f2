package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeverityLevel grades how strongly a user reacts to an allergen. The
// empty value means the user did not report a severity.
type SeverityLevel string

const (
	SeverityMild            SeverityLevel = "mild"
	SeverityModerate        SeverityLevel = "moderate"
	SeveritySevere          SeverityLevel = "severe"
	SeverityLifeThreatening SeverityLevel = "life_threatening"
)

// Valid reports enum membership. Blank is allowed: severity is optional.
func (s SeverityLevel) Valid() bool {
	switch s {
	case "", SeverityMild, SeverityModerate, SeveritySevere, SeverityLifeThreatening:
		return true
	}
	return false
}

// Display returns the human-readable severity label.
func (s SeverityLevel) Display() string {
	switch s {
	case SeverityMild:
		return "Mild"
	case SeverityModerate:
		return "Moderate"
	case SeveritySevere:
		return "Severe"
	case SeverityLifeThreatening:
		return "Life-Threatening"
	}
	return string(s)
}

// SourceInfo records where the allergy claim came from. The empty value
// means the source was not reported.
type SourceInfo string

const (
	SourceSelfReported    SourceInfo = "self_reported"
	SourceDoctorDiagnosed SourceInfo = "doctor_diagnosed"
	SourceAllergyTest     SourceInfo = "allergy_test"
	SourceFamilyHistory   SourceInfo = "family_history"
)

// Valid reports enum membership. Blank is allowed: the source is optional.
func (s SourceInfo) Valid() bool {
	switch s {
	case "", SourceSelfReported, SourceDoctorDiagnosed, SourceAllergyTest, SourceFamilyHistory:
		return true
	}
	return false
}

// Display returns the human-readable source label.
func (s SourceInfo) Display() string {
	switch s {
	case SourceSelfReported:
		return "Self-Reported"
	case SourceDoctorDiagnosed:
		return "Doctor Diagnosed"
	case SourceAllergyTest:
		return "Allergy Test"
	case SourceFamilyHistory:
		return "Family History"
	}
	return string(s)
}

// JSONBMap is a custom type for handling string-keyed objects in JSONB.
type JSONBMap map[string]interface{}

// Value implements the driver.Valuer interface
func (m JSONBMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface
func (m *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONBMap{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, m)
}

// UserAllergy links one user to one catalog allergen. A user can hold at
// most one row per allergen; removing the allergy deactivates the row
// rather than deleting it.
type UserAllergy struct {
	ID                  uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID              uuid.UUID     `gorm:"type:uuid;not null;index:userallergy_user_active_idx;uniqueIndex:uniq_user_allergen" json:"user_id"`
	User                *User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	AllergenID          uuid.UUID     `gorm:"type:uuid;not null;index:userallergy_allergen_active_idx;uniqueIndex:uniq_user_allergen" json:"allergen_id"`
	Allergen            *Allergen     `gorm:"foreignKey:AllergenID;constraint:OnDelete:CASCADE" json:"allergen,omitempty"`
	SeverityLevel       SeverityLevel `gorm:"size:20;not null;default:''" json:"severity_level"`
	IsConfirmed         bool          `gorm:"not null;default:false" json:"is_confirmed"`
	SymptomOnsetDate    *time.Time    `gorm:"type:date" json:"symptom_onset_date,omitempty"`
	SourceInfo          SourceInfo    `gorm:"size:20;not null;default:''" json:"source_info"`
	UserReactionDetails JSONBMap      `gorm:"type:jsonb;not null;default:'{}'" json:"user_reaction_details"`
	AdminNotes          JSONBMap      `gorm:"type:jsonb;not null;default:'{}'" json:"admin_notes"`
	IsActive            bool          `gorm:"not null;default:true;index:userallergy_user_active_idx,priority:2;index:userallergy_allergen_active_idx,priority:2" json:"is_active"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

func (UserAllergy) TableName() string {
	return "user_allergies"
}

func (ua *UserAllergy) BeforeCreate(tx *gorm.DB) error {
	if ua.ID == uuid.Nil {
		ua.ID = uuid.New()
	}
	return nil
}
