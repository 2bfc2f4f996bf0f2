package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dermatrack/backend/internal/catalog"
	"github.com/dermatrack/backend/internal/models"
)

// AllergyService owns the lifecycle of user-allergen relationship rows.
// Save is the only write path: every create and update runs the full
// validation pipeline before anything reaches the store.
type AllergyService struct {
	db      *gorm.DB
	catalog *catalog.Index
	now     func() time.Time
}

// Ensure AllergyService implements IAllergyService
var _ IAllergyService = (*AllergyService)(nil)

// NewAllergyService creates a new AllergyService instance
func NewAllergyService(db *gorm.DB, idx *catalog.Index) *AllergyService {
	return &AllergyService{
		db:      db,
		catalog: idx,
		now:     time.Now,
	}
}

// validatedAllergy proves a row passed validation. It is unexported and
// only produced by validate, so no code path can persist an unvalidated
// row.
type validatedAllergy struct {
	record *models.UserAllergy
}

// validate runs the rule pipeline in order: field shape, then the
// temporal check against the current clock, then the activity of the
// referenced allergen. The allergen check runs on every save, so an
// update to a row whose allergen has since been deactivated is rejected
// the same as a create.
func (s *AllergyService) validate(ctx context.Context, ua *models.UserAllergy) (validatedAllergy, error) {
	if ua.UserID == uuid.Nil {
		return validatedAllergy{}, shapeError("user", "user reference is required")
	}
	if ua.AllergenID == uuid.Nil {
		return validatedAllergy{}, shapeError("allergen", "allergen reference is required")
	}
	if !ua.SeverityLevel.Valid() {
		return validatedAllergy{}, shapeError("severity_level", "unknown severity level")
	}
	if !ua.SourceInfo.Valid() {
		return validatedAllergy{}, shapeError("source_info", "unknown source info")
	}

	if ua.SymptomOnsetDate != nil {
		// Date-granular comparison: an onset of "today" is fine, only a
		// strictly future date is rejected.
		today := s.now()
		onset := *ua.SymptomOnsetDate
		y1, m1, d1 := onset.Date()
		y2, m2, d2 := today.Date()
		if time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC).After(time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)) {
			return validatedAllergy{}, &ValidationError{
				Kind:    TemporalViolation,
				Field:   "symptom_onset_date",
				Message: "symptom onset date cannot be in the future",
			}
		}
	}

	var allergen models.Allergen
	if err := s.db.WithContext(ctx).First(&allergen, "id = ?", ua.AllergenID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return validatedAllergy{}, &ValidationError{
				Kind:    ReferentialStateViolation,
				Field:   "allergen",
				Message: "referenced allergen does not exist",
			}
		}
		return validatedAllergy{}, err
	}
	if !allergen.IsActive {
		return validatedAllergy{}, &ValidationError{
			Kind:    ReferentialStateViolation,
			Field:   "allergen",
			Message: "cannot link to an inactive allergen",
		}
	}

	return validatedAllergy{record: ua}, nil
}

// persist writes a validated row. The store's unique constraint on
// (user, allergen) is the backstop for concurrent creates; its failure
// surfaces as a UniquenessViolation.
func (s *AllergyService) persist(ctx context.Context, v validatedAllergy) error {
	err := s.db.WithContext(ctx).Save(v.record).Error
	return translateUniqueness(err, "user_allergy")
}

// Save validates then persists a user allergy. It is the only sanctioned
// write entry point for relationship rows.
func (s *AllergyService) Save(ctx context.Context, ua *models.UserAllergy) error {
	v, err := s.validate(ctx, ua)
	if err != nil {
		return err
	}
	return s.persist(ctx, v)
}

// GetAllergy retrieves one of the user's allergy rows.
func (s *AllergyService) GetAllergy(ctx context.Context, userID, id uuid.UUID) (*models.UserAllergy, error) {
	var ua models.UserAllergy
	if err := s.db.WithContext(ctx).Preload("Allergen").
		Where("id = ? AND user_id = ?", id, userID).
		First(&ua).Error; err != nil {
		return nil, err
	}
	return &ua, nil
}

// ListAllergies lists a user's allergy rows, active ones first by
// creation time.
func (s *AllergyService) ListAllergies(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*models.UserAllergy, error) {
	query := s.db.WithContext(ctx).Preload("Allergen").Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var rows []models.UserAllergy
	if err := query.Order("is_active DESC, created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]*models.UserAllergy, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Deactivate soft-removes a user's allergy row. It goes through Save, so
// a row whose allergen has been deactivated cannot be touched until the
// allergen is reactivated.
func (s *AllergyService) Deactivate(ctx context.Context, userID, id uuid.UUID) (*models.UserAllergy, error) {
	var ua models.UserAllergy
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&ua).Error; err != nil {
		return nil, err
	}
	ua.IsActive = false
	if err := s.Save(ctx, &ua); err != nil {
		return nil, err
	}
	return &ua, nil
}
