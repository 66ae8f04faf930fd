package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors flattens binding errors into field -> message.
func FormatValidationErrors(err error) interface{} {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		out := make(map[string]string, len(validationErrors))
		for _, fieldError := range validationErrors {
			out[fieldError.Field()] = validationMessage(fieldError)
		}
		return out
	}
	return err.Error()
}

func validationMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "This field is required"
	case "gt":
		return "Value must be greater than " + fieldError.Param()
	case "gte":
		return "Value must be greater than or equal to " + fieldError.Param()
	case "lte":
		return "Value must be less than or equal to " + fieldError.Param()
	case "min":
		return "Value must be at least " + fieldError.Param()
	case "max":
		return "Value must be at most " + fieldError.Param()
	case "ne":
		return "Value must not be " + fieldError.Param()
	case "oneof":
		return "Value must be one of " + fieldError.Param()
	default:
		return "Invalid value"
	}
}
