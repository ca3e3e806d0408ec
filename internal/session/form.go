package session

import (
	"strings"

	"github.com/gabapcia/walletsync/internal/pkg/validator"
)

// Messages shown for invalid authentication forms.
const (
	MsgFillAllFields    = "Please fill in all fields"
	MsgPasswordMismatch = "Passwords do not match"
	MsgPasswordTooShort = "Password must be at least 6 characters long"
)

// minPasswordLength must match the min rule on RegisterForm.Password.
const minPasswordLength = 6

// LoginForm holds the login credentials as typed by the user.
type LoginForm struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterForm holds the sign-up fields as typed by the user.
type RegisterForm struct {
	Email           string `json:"email" validate:"required"`
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
}

// FormError lists every problem found in a form, in display order.
// It matches validator.ErrValidationFailed with errors.Is.
type FormError struct {
	Messages []string
}

func (e *FormError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func (e *FormError) Is(target error) bool {
	return target == validator.ErrValidationFailed
}

func validateLoginForm(f LoginForm) error {
	if err := validator.Validate(f); err != nil {
		return &FormError{Messages: []string{MsgFillAllFields}}
	}
	return nil
}

// validateRegisterForm reports at most one message per problem. An empty
// password is both missing and too short.
func validateRegisterForm(f RegisterForm) error {
	err := validator.Validate(f)
	if err == nil {
		return nil
	}

	var missing, mismatch, short bool
	for _, fe := range validator.FieldErrors(err) {
		switch fe.Tag {
		case "required":
			missing = true
		case "eqfield":
			mismatch = true
		case "min":
			short = true
		}
	}
	if len(f.Password) < minPasswordLength {
		short = true
	}

	var msgs []string
	if missing {
		msgs = append(msgs, MsgFillAllFields)
	}
	if mismatch {
		msgs = append(msgs, MsgPasswordMismatch)
	}
	if short {
		msgs = append(msgs, MsgPasswordTooShort)
	}
	return &FormError{Messages: msgs}
}
