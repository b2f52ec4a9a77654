package user

import (
	"regexp"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

var screenNameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt input limit in bytes
)

// RegisterInput holds the parameters for creating an account.
type RegisterInput struct {
	ScreenName string
	Password   string
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if !screenNameRe.MatchString(i.ScreenName) {
		errs = append(errs, domain.FieldError{Field: "screen_name", Message: "3-20 letters, digits or underscores"})
	}
	if len(i.Password) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	}
	if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "max 72 bytes"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput holds the credentials for Login.
type LoginInput struct {
	ScreenName string
	Password   string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.ScreenName == "" {
		errs = append(errs, domain.FieldError{Field: "screen_name", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
