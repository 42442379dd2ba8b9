// Package validation decodes JSON request bodies into typed requests and
// checks them with go-playground/validator. A decode either yields the typed
// value or an *Error listing the violated fields, never both.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Issue describes a single violated field
type Issue struct {
	Field   string
	Message string
}

// Error is returned when a request body fails to decode or validate.
// Its message is the first issue's message.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	if len(e.Issues) == 0 {
		return "validation failed"
	}
	return e.Issues[0].Message
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so messages match the request body.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(timestampValue, Timestamp{})
	if err := v.RegisterValidation("timestamp", isTimestamp); err != nil {
		panic(fmt.Sprintf("validation: failed to register timestamp rule: %v", err))
	}

	return v
}

// DecodeJSON reads a JSON document from r into a T and validates it
func DecodeJSON[T any](r io.Reader) (T, error) {
	var req T

	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return req, decodeError(err)
	}

	if err := Struct(req); err != nil {
		return req, err
	}

	return req, nil
}

// Struct validates an already decoded value
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	issues := make([]Issue, 0, len(ve))
	for _, fe := range ve {
		issues = append(issues, Issue{Field: fe.Field(), Message: fieldError(fe)})
	}
	return &Error{Issues: issues}
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &Error{Issues: []Issue{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("%s must be a %s", typeErr.Field, typeName(typeErr.Type)),
		}}}
	}
	return &Error{Issues: []Issue{{Message: "invalid request body"}}}
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	default:
		return t.String()
	}
}

// fieldError converts a single FieldError into a human-readable message
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "timestamp":
		return field + " must be a valid date"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
