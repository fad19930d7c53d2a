// Package validation plugs go-playground/validator into echo.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator that reports fields by their form tag name.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		default:
			return name
		}
	})
	return &Validator{v: v}
}

func (cv *Validator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// Violation is one failed rule on one field.
type Violation struct {
	Field string
	Tag   string
	Param string
}

// Violations flattens a validation error. Errors of any other kind yield nil.
func Violations(err error) []Violation {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]Violation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, Violation{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()})
	}
	return out
}
