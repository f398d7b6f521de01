package util

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	personNamePattern = regexp.MustCompile(`^[a-zA-Z\s-]+$`)
	digitPattern      = regexp.MustCompile(`^\d$`)

	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with the custom tags registered:
//
//	personname  letters, whitespace and hyphens, not blank
//	otpdigit    a single decimal digit
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
			return IsValidName(fl.Field().String())
		})
		_ = v.RegisterValidation("otpdigit", func(fl validator.FieldLevel) bool {
			return digitPattern.MatchString(fl.Field().String())
		})
		validate = v
	})

	return validate
}

// IsValidPhone reports whether phone is exactly ten digits.
func IsValidPhone(phone string) bool {
	return Validator().Var(phone, "len=10,numeric") == nil && !strings.ContainsAny(phone, "+-.")
}

// IsValidName reports whether name is non-blank and only letters, spaces and hyphens.
func IsValidName(name string) bool {
	return strings.TrimSpace(name) != "" && personNamePattern.MatchString(name)
}

// IsValidOTP reports whether the code has six entries of one digit each.
func IsValidOTP(code []string) bool {
	return Validator().Var(code, "len=6,dive,otpdigit") == nil
}

// IsValidWeight reports whether a weight value is positive.
func IsValidWeight(value float64) bool {
	return value > 0
}
