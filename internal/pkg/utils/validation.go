package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs the shared validator over a form DTO.
func ValidateStruct(request interface{}) error {
	return validate.Struct(request)
}

// FormatFirstValidationError renders the first failed rule as a short,
// user-facing sentence for the toast.
func FormatFirstValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return "invalid input"
	}

	fieldError := validationErrors[0]
	field := strings.ToLower(fieldError.Field())
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fieldError.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fieldError.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
