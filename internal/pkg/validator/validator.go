// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative struct validation with standardized, human-readable errors.
//
// Fields are reported by their `json` tag name when one is set, so messages match
// the names users see in forms and API payloads. Besides the built-in rules, the
// non-standard `notblank` rule is registered (rejects whitespace-only strings).
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
//
// This sentinel error allows callers to detect validation failures explicitly,
// even when multiple field errors are returned.
var ErrValidationFailed = errors.New("validation failed")

// validator is a singleton instance of the go-playground validator,
// initialized automatically on package load.
var validator *gvalidator.Validate

// errStringFormat is the fallback description for rules without a dedicated message.
//
// Example: "'toAddress': value '0x' does not meet the requirements for the 'eth_addr' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	validator.RegisterTagNameFunc(jsonFieldName)

	if err := validator.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
}

// jsonFieldName reports a field by its json name, falling back to the Go name.
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	default:
		return name
	}
}

// FieldError describes a single violated rule.
type FieldError struct {
	Field string // reported field name
	Tag   string // violated rule, e.g. "required"
	Param string // rule parameter, e.g. "0" for gt=0
	Value any    // offending value
}

// Error renders the violation as a sentence suitable for showing to a user.
func (e FieldError) Error() string {
	switch e.Tag {
	case "required", "notblank":
		return fmt.Sprintf("'%s' is required", e.Field)
	case "gt":
		return fmt.Sprintf("'%s' must be greater than %s", e.Field, e.Param)
	case "gte":
		return fmt.Sprintf("'%s' must be at least %s", e.Field, e.Param)
	case "min":
		return fmt.Sprintf("'%s' must be at least %s characters long", e.Field, e.Param)
	case "eqfield":
		return fmt.Sprintf("'%s' must match '%s'", e.Field, e.Param)
	case "email":
		return fmt.Sprintf("'%s' must be a valid email address", e.Field)
	default:
		return fmt.Sprintf(errStringFormat, e.Field, e.Value, e.Tag)
	}
}

// formatError transforms a raw validator error into a multi-error chain.
//
// If the input is a set of validation errors, it returns a combined error with ErrValidationFailed as the root,
// followed by one FieldError per violation. Otherwise, the original error is returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, FieldError{
			Field: validationErr.Field(),
			Tag:   validationErr.Tag(),
			Param: validationErr.Param(),
			Value: validationErr.Value(),
		})
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that includes
// ErrValidationFailed and one FieldError for each field that failed validation.
//
// Example usage:
//
//	type Input struct {
//	    Name string `json:"name" validate:"required"`
//	}
//
//	if err := validator.Validate(input); errors.Is(err, validator.ErrValidationFailed) {
//	    // Handle validation failure
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// FieldErrors extracts the individual violations from an error returned by Validate.
// It returns nil for errors that did not come from a failed validation.
func FieldErrors(err error) []FieldError {
	if !errors.Is(err, ErrValidationFailed) {
		return nil
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return nil
	}

	var fieldErrs []FieldError
	for _, e := range joined.Unwrap() {
		var fe FieldError
		if errors.As(e, &fe) {
			fieldErrs = append(fieldErrs, fe)
		}
	}
	return fieldErrs
}

// Messages returns the user-facing message of every violation in err.
func Messages(err error) []string {
	fieldErrs := FieldErrors(err)
	if len(fieldErrs) == 0 {
		return nil
	}

	msgs := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		msgs[i] = fe.Error()
	}
	return msgs
}
