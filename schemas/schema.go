// Package schemas contains the declarative request validation for the two
// resource types.
//
// Each schema deserializes a JSON body into a typed payload and enforces the
// rules declared in `validate` struct tags, collecting one message per failed
// field into a map the client can act on.
package schemas

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a field name to its validation message. It is serialized
// verbatim as the body of a 400 response.
type FieldErrors map[string]string

// newValidator builds a validator that reports fields by their json names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// loadErrors converts a decode or validation failure into field errors.
// typeMessages overrides the generic type-mismatch wording for fields with a
// declared type narrower than their JSON primitive (a date inside a string).
func loadErrors(err error, typeMessages map[string]string) FieldErrors {
	switch e := err.(type) {
	case validator.ValidationErrors:
		errors := make(FieldErrors, len(e))
		for _, fieldErr := range e {
			errors[fieldErr.Field()] = messageFor(fieldErr)
		}
		return errors
	case *json.UnmarshalTypeError:
		// An empty Field means the body itself was not an object.
		if e.Field == "" {
			return FieldErrors{"_schema": "Invalid input type."}
		}
		if msg, ok := typeMessages[e.Field]; ok {
			return FieldErrors{e.Field: msg}
		}
		return FieldErrors{e.Field: "Not a valid " + typeName(e.Type) + "."}
	default:
		return FieldErrors{"_schema": "Invalid input type."}
	}
}

func messageFor(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "Missing data for required field."
	case "datetime":
		return "Not a valid date."
	default:
		return "Invalid value."
	}
}

func typeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	default:
		return t.String()
	}
}
