package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_\-]{1,64}$`)

func ValidateListLeadsInput(input ListLeadsInput) []ValidationError {
	var errors []ValidationError

	errors = append(errors, validateID("user_id", input.UserID)...)

	if strings.TrimSpace(input.Status) != "" {
		if _, ok := ParseLeadStatus(input.Status); !ok {
			errors = append(errors, ValidationError{"status", "must be Interested, Follow-up, Converted or Closed"})
		}
	}

	return errors
}

func ValidateEmail(email string) []ValidationError {
	if strings.TrimSpace(email) == "" {
		return []ValidationError{{"email", "is required"}}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return []ValidationError{{"email", "is invalid"}}
	}
	return nil
}

func ValidateUserID(userID string) []ValidationError {
	return validateID("user_id", userID)
}

func validateID(field, id string) []ValidationError {
	if strings.TrimSpace(id) == "" {
		return []ValidationError{{field, "is required"}}
	}
	if !idPattern.MatchString(id) {
		return []ValidationError{{field, "must be alphanumeric"}}
	}
	return nil
}

// NewValidationError junta os erros num DomainError só.
func NewValidationError(errs []ValidationError) *DomainError {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Field+" ("+e.Message+")")
	}
	return &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: "validation failed: " + strings.Join(parts, ", "),
	}
}
