// Package validation builds the request validator and turns its failures
// into path/message issues that clients can map back onto their payload.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ISODateTime is the layout accepted for entry dates. Fractional seconds are
// tolerated by time.Parse even though the layout omits them.
const ISODateTime = "2006-01-02T15:04:05Z07:00"

// Issue is a single field-level validation failure.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// New returns a validator that reports fields by their JSON names.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})
	return v
}

// Issues flattens err into issues. Every validator failure becomes its own
// issue; decoding failures become a single one.
func Issues(err error) []Issue {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		issues := make([]Issue, 0, len(verrs))
		for _, fe := range verrs {
			issues = append(issues, Issue{
				Path:    fieldPath(fe.Namespace()),
				Message: message(fe),
			})
		}
		return issues
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []Issue{{
			Path:    typeErr.Field,
			Message: fmt.Sprintf("expected %s, received %s", jsonKind(typeErr.Type), typeErr.Value),
		}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return []Issue{{Message: "malformed JSON"}}
	}

	return []Issue{{Message: err.Error()}}
}

// fieldPath drops the leading struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "eq":
		return "must equal " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "datetime":
		return "must be an ISO-8601 datetime"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a UUID"
	case "min":
		return "must be at least " + fe.Param() + " characters long"
	case "max":
		return "must be at most " + fe.Param() + " characters long"
	}
	return "failed the " + fe.Tag() + " rule"
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	}
	return "object"
}
