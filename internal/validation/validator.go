// Package validation wraps the validator/v10 library to produce the inline
// form messages rendered by the signup and login pages.
package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validator validates form structs against their validate tags.
type Validator struct {
	v *validator.Validate
}

// New creates a validator for form structs.
func New() *Validator {
	return &Validator{v: validator.New()}
}

// Messages validates s and returns one human-readable message per failed
// field, in declaration order. A nil result means the struct is valid.
func (v *Validator) Messages(s any) []string {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{"Invalid input"}
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		msgs = append(msgs, friendlyMessage(e))
	}
	return msgs
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "min":
		return fmt.Sprintf("%s should be %s characters or more", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s should be %s characters or fewer", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
