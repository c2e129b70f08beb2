package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// weekday: integer 0 (Sunday) .. 6 (Saturday)
	v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		day := fl.Field().Int()
		return day >= 0 && day <= 6
	})

	// hhmm: same-day wall clock, "06:00" .. "23:59"
	v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := ParseClock(fl.Field().String())
		return err == nil
	})

	return v
}

func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors[err.Field()] = getErrorMessage(err)
		}
	}

	return errors
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Minimum is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum is %s", err.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	case "uuid4", "uuid":
		return "Invalid ID format"
	case "datetime":
		return fmt.Sprintf("Must match format %s", err.Param())
	case "weekday":
		return "Must be a weekday between 0 (Sunday) and 6 (Saturday)"
	case "hhmm":
		return "Must be a wall-clock time in HH:MM format"
	case "dive":
		return "Invalid list entry"
	default:
		return fmt.Sprintf("Failed validation: %s", err.Tag())
	}
}

func FormatValidationErrors(errors map[string]string) string {
	parts := make([]string, 0, len(errors))
	for field, msg := range errors {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(parts, "; ")
}
