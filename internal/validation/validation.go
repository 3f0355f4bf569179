// Package validation turns untyped request bodies into normalized, validated
// documents. It has no knowledge of HTTP or storage, so every schema rule
// can be exercised without a database.
//
// The flow for a JSON body is always the same:
//
//	decode (input type)  →  Normalize (trim + defaults)  →  validator rules
//
// Failures are reported as *Error carrying a machine-readable Code and, for
// rule violations, the list of offending fields.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Error codes reported to clients.
const (
	CodeInvalidBody      = "invalid_body"
	CodeValidationFailed = "validation_failed"
)

// FieldError names one broken rule. Field is the JSON name of the field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// Error is returned for every rejected input.
type Error struct {
	Code   string
	Reason string
	Fields []FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Reason)
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("field %s failed %s", f.Field, f.Rule))
	}
	return fmt.Sprintf("%s: %s", e.Code, strings.Join(parts, ", "))
}

// Normalizer is implemented by the input types in package types.
type Normalizer[T any] interface {
	Normalize() T
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names so clients see "studentName", not "StudentName".
	// Fields hidden from JSON (opaque content maps) fall back to their
	// lower-cased Go name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			r := []rune(fld.Name)
			r[0] = unicode.ToLower(r[0])
			return string(r)
		}
		return name
	})

	return v
}

// Bind decodes body into the input type In, normalizes it and validates
// the result.
//
//	msg, err := validation.Bind[types.ContactMessage, types.ContactMessageInput](r.Body)
func Bind[T any, In Normalizer[T]](body io.Reader) (T, error) {
	var zero T

	var in In
	err := json.NewDecoder(body).Decode(&in)
	if errors.Is(err, io.EOF) {
		return zero, &Error{Code: CodeInvalidBody, Reason: "request body is empty"}
	}
	if err != nil {
		return zero, &Error{Code: CodeInvalidBody, Reason: err.Error()}
	}

	out := in.Normalize()
	if err := Struct(out); err != nil {
		return zero, err
	}

	return out, nil
}

// Struct runs the validate:"..." rules of v.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation: %w", err)
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, FieldError{
			Field: e.Field(),
			Rule:  e.Tag(),
			Param: e.Param(),
		})
	}

	return &Error{Code: CodeValidationFailed, Reason: "validation failed", Fields: fields}
}
