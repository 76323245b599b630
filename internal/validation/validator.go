package validation

import (
	"strconv"
	"strings"

	"lingua-progress/internal/domain"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateProgressID parses the test progress id path parameter.
func (v *Validator) ValidateProgressID(raw string) (int64, domain.ValidationErrors) {
	if strings.TrimSpace(raw) == "" {
		return 0, domain.ValidationErrors{domain.NewMissingFieldError("id")}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("id", raw)}
	}
	return id, nil
}

// ValidateContentType parses the type query parameter. A missing value is
// ContentNone; an integer outside 1..3 is passed through and later matches
// no completion check.
func (v *Validator) ValidateContentType(raw string) (domain.ContentType, domain.ValidationErrors) {
	if raw == "" {
		return domain.ContentNone, nil
	}
	t, err := strconv.Atoi(raw)
	if err != nil {
		return domain.ContentNone, domain.ValidationErrors{domain.NewInvalidFormatError("type", raw)}
	}
	return domain.ContentType(t), nil
}

// ValidateUpdateIsCorrect validates the path and query parameters of an
// UpdateIsCorrect request together so every problem is reported at once.
func (v *Validator) ValidateUpdateIsCorrect(rawID, rawType string) (int64, domain.ContentType, domain.ValidationErrors) {
	var errors domain.ValidationErrors

	id, idErrs := v.ValidateProgressID(rawID)
	errors = append(errors, idErrs...)

	t, typeErrs := v.ValidateContentType(rawType)
	errors = append(errors, typeErrs...)

	return id, t, errors
}
