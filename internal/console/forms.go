// Package console renders the five storefront pages to a writer and drives
// them with line-oriented commands. Pages own their page-local state and talk
// to the backend through the gateway; shared state lives in the store.
package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormValidator wraps go-playground/validator for the client-side form
// drafts (register, category, product). Failures here are validation
// rejections: they never reach the network.
type FormValidator struct {
	v *validator.Validate
}

// NewFormValidator returns a ready FormValidator.
func NewFormValidator() *FormValidator {
	return &FormValidator{v: validator.New()}
}

// Validate checks a draft struct and joins all field failures into one
// human-readable message.
func (fv *FormValidator) Validate(i any) error {
	if err := fv.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "url":
		return field + " must be a valid url"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
