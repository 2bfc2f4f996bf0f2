package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ViolationKind classifies why a write was rejected.
type ViolationKind string

const (
	// ShapeViolation: a field failed type/length/enum-membership checks.
	ShapeViolation ViolationKind = "shape"
	// TemporalViolation: the symptom onset date lies in the future.
	TemporalViolation ViolationKind = "temporal"
	// ReferentialStateViolation: the referenced allergen is missing or
	// has been deactivated.
	ReferentialStateViolation ViolationKind = "referential_state"
	// UniquenessViolation: the store rejected a duplicate catalog or
	// relationship row.
	UniquenessViolation ViolationKind = "uniqueness"
)

// ValidationError is a structured rule violation naming the offending
// field. The write it gated did not happen.
type ValidationError struct {
	Kind    ViolationKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func shapeError(field, message string) error {
	return &ValidationError{Kind: ShapeViolation, Field: field, Message: message}
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// translateUniqueness maps store-level duplicate-key failures onto a
// UniquenessViolation so callers see one error shape regardless of
// driver. Postgres reports SQLSTATE 23505; SQLite reports a "UNIQUE
// constraint failed" message; GORM has its own sentinel for dialects
// that translate errors.
func translateUniqueness(err error, field string) error {
	if err == nil {
		return nil
	}

	unique := errors.Is(err, gorm.ErrDuplicatedKey)
	if !unique {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			unique = true
		}
	}
	if !unique && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		unique = true
	}
	if !unique && strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
		unique = true
	}

	if unique {
		return &ValidationError{
			Kind:    UniquenessViolation,
			Field:   field,
			Message: "a row with this combination already exists",
		}
	}
	return err
}
