package usecase

import (
	"fmt"
	"net/mail"
	"strings"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors lets a use case hand the full field list back to the
// handler as a single error value.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}

const minPasswordLength = 8

func ValidateRegisterInput(input RegisterInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.Username) == "" {
		errs = append(errs, ValidationError{"username", "is required"})
	} else if _, err := mail.ParseAddress(input.Username); err != nil {
		errs = append(errs, ValidationError{"username", "must be a valid email address"})
	}

	errs = append(errs, validatePassword(input.Password)...)

	return errs
}

func ValidateResetPasswordInput(input ResetPasswordInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.Token) == "" {
		errs = append(errs, ValidationError{"token", "is required"})
	}

	errs = append(errs, validatePassword(input.Password)...)

	return errs
}

// ValidateLeadInput checks the optional contact email. Company names are
// coerced rather than rejected, and unknown stages classify to awareness, so
// neither is a validation failure.
func ValidateLeadInput(input LeadInput) []ValidationError {
	var errs []ValidationError

	if input.Email != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			errs = append(errs, ValidationError{"email", "is invalid"})
		}
	}

	return errs
}

func validatePassword(password string) []ValidationError {
	if password == "" {
		return []ValidationError{{"password", "is required"}}
	}
	if len(password) < minPasswordLength {
		return []ValidationError{{"password", fmt.Sprintf("must have at least %d characters", minPasswordLength)}}
	}
	return nil
}
