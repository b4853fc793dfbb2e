package config

import "github.com/go-playground/validator/v10"

var validate *validator.Validate

func InitValidator() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// Validate checks a DTO against its `validate` tags.
func Validate(dto interface{}) error {
	if validate == nil {
		InitValidator()
	}
	return validate.Struct(dto)
}
