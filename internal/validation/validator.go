package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/cityherald/content-api/internal/errs"
	"github.com/go-playground/validator/v10"
)

// PasswordSymbols is the fixed set of symbols a password must draw from.
// Part of the registration contract.
const PasswordSymbols = "!@#$%^&*()-_=+[]{};:,.<>?"

// MinPasswordLength is the minimum password length
const MinPasswordLength = 8

// Validator wraps go-playground struct validation plus the domain rules that
// tags cannot express.
type Validator struct {
	validate *validator.Validate
}

// New creates a new validator instance
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Struct validates a request struct against its validate tags, converting the
// first failure into a client-facing validation error.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return errs.Validation("", "invalid request body")
	}

	fe := verrs[0]
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return errs.Validationf(field, "%s is required", field)
	case "email":
		return errs.Validationf(field, "%s must be a valid email address", field)
	case "oneof":
		return errs.Validationf(field, "%s must be one of: %s", field, fe.Param())
	case "min":
		return errs.Validationf(field, "%s must have at least %s entries", field, fe.Param())
	default:
		return errs.Validationf(field, "%s is invalid", field)
	}
}

// Password checks the registration password shape: minimum length with at
// least one lowercase letter, one uppercase letter, one digit and one symbol
// from the fixed set.
func (v *Validator) Password(password string) error {
	if len(password) < MinPasswordLength {
		return errs.Validationf("password", "password must be at least %d characters", MinPasswordLength)
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(PasswordSymbols, r):
			hasSymbol = true
		}
	}

	if !hasLower || !hasUpper || !hasDigit || !hasSymbol {
		return errs.Validation("password", fmt.Sprintf(
			"password must contain a lowercase letter, an uppercase letter, a digit and a symbol from %s",
			PasswordSymbols,
		))
	}
	return nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
