package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the shared validator instance over an input struct's
// `validate` tags.
func ValidateStruct(input any) error {
	return validate.Struct(input)
}

// ProcessValidationErrors converts validator errors to a field -> message map
// suitable for API/CLI error payloads.
func ProcessValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		if err != nil {
			errorsMap["_"] = err.Error()
		}
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		errorsMap[fieldError.Field()] = "failed on " + fieldError.Tag()
	}
	return errorsMap
}
