// Package forms validates and normalises user input before it is sent to the
// backend. A form that fails validation never results in a network call.
package forms

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError carries a message suitable for showing to the user.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError reports whether err is (or wraps) a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// messages maps "Form.Field" (or "Form.Field.tag") to the text shown to the
// user; the tag-specific key wins.
type messages map[string]string

func (m messages) lookup(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	if msg, ok := m[ns+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := m[ns]; ok {
		return msg
	}
	return fe.Field() + " is invalid"
}

// check runs the struct validator and turns the first failure into a
// *ValidationError.
func check(form any, m messages) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return &ValidationError{Field: fe.Field(), Message: m.lookup(fe)}
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
