// Package validation adapts go-playground/validator to echo's Validator
// interface so request DTOs are checked from their struct tags before any
// handler logic runs.
package validation

import "github.com/go-playground/validator/v10"

type RequestValidator struct {
	validate *validator.Validate
}

func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
