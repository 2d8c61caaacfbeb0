package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError lists the fields of a record that failed validation and
// why.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+e.Fields[key])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate checks a record against its struct tags.
func Validate(record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		verr.Fields[fieldPath(fe)] = describe(fe)
	}
	return verr
}

// FromDecodeError turns a JSON type mismatch into a ValidationError naming
// the offending field. Other decode failures are reported as not a
// validation problem.
func FromDecodeError(err error) (*ValidationError, bool) {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return nil, false
	}
	field := typeErr.Field
	if field == "" {
		field = "body"
	}
	return &ValidationError{Fields: map[string]string{
		field: fmt.Sprintf("invalid type: expected %s, got %s", typeErr.Type.String(), typeErr.Value),
	}}, true
}

// fieldPath drops the struct name from the validator namespace, giving
// "exercises[0].name" rather than "Workout.exercises[0].name".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "must be a valid email"
	case "oneof":
		return "must be one of " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "gte":
		return "must be >= " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}
