package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"hmaas-backend/pkg/schema"
)

var validate = validator.New()

// ValidateStruct validates a struct based on its validation tags and returns
// a field-level issue list, or nil when the struct is valid.
func ValidateStruct(s any) []schema.Issue {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []schema.Issue{{Path: "", Message: err.Error()}}
	}

	issues := make([]schema.Issue, 0, len(validationErrors))
	for _, e := range validationErrors {
		issues = append(issues, schema.Issue{
			Path:    strings.ToLower(e.Field()[:1]) + e.Field()[1:],
			Message: formatFieldError(e),
		})
	}
	return issues
}

// formatFieldError formats a single field validation error
func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
