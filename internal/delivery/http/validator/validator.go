// Package validator adapts the shared request validator to echo.
package validator

import (
	"bezgo/internal/util"

	"github.com/go-playground/validator/v10"
)

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New returns the validator with the application's custom tags registered.
func New() *RequestValidator {
	return &RequestValidator{validate: util.Validator()}
}

// Validate validates a bound request struct.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
