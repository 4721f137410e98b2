package service

import (
	"errors"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const minPasswordLength = 6

// same rule gin applies to the "email" binding tag
var emailRule = validator.New()

// CheckPassword enforces the registration password policy: at least six letters or digits,
// with one uppercase letter and one digit.
func CheckPassword(password string) error {
	if password == "" {
		return errors.New("password is required")
	}
	if len(password) < minPasswordLength {
		return errors.New("password must be at least 6 characters")
	}
	var upper, digit bool
	for _, r := range password {
		switch {
		case r > unicode.MaxASCII:
			return errors.New("password may only contain letters and digits")
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsLower(r):
		default:
			return errors.New("password may only contain letters and digits")
		}
	}
	if !upper || !digit {
		return errors.New("password must contain at least one uppercase letter and one digit")
	}
	return nil
}

func validEmail(email string) bool {
	return email != "" && emailRule.Var(email, "email") == nil
}
