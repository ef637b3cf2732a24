// Package validator provides validation infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package validator

import (
	"errors"
	"reflect"
	"strings"

	"agentic_backend/platform/apperr"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator for structured validation.
// Using a struct allows for dependency injection and easier testing.
type Validator struct {
	v *validator.Validate
}

// New creates a new Validator instance.
// Field names in reported errors come from the json tag, so they match what
// the client sent.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Struct validates a struct based on validation tags.
func (val *Validator) Struct(s interface{}) error {
	return val.v.Struct(s)
}

// MessageFunc returns the human-readable message for a failed field check.
type MessageFunc func(fe validator.FieldError) string

// FieldErrors flattens a validation error into one entry per violated field,
// in struct declaration order. Non-validation errors yield nil.
func FieldErrors(err error, message MessageFunc) []apperr.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]apperr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Error()
		if message != nil {
			if custom := message(fe); custom != "" {
				msg = custom
			}
		}
		out = append(out, apperr.FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}
