package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ghuser/shoppinglist/pkg/httpx"
)

// Public messages for body-level failures.
const (
	MsgInvalidBody      = "Invalid request body"
	MsgBodyTooLarge     = "Request body too large"
	MsgValidationFailed = "Validation failed"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		// ignore unexported or explicitly ignored
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Messager lets a request type choose the public error message written when
// struct validation fails. fields is the output of FormatValidationErrors.
type Messager interface {
	ValidationMessage(fields map[string]string) string
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// FormatValidationErrors converts validator.ValidationErrors into a map of
// field name → human-readable message.
func FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return errs
	}
	for _, e := range ve {
		errs[e.Field()] = formatFieldError(e)
	}
	return errs
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "uuid", "uuid4":
		return "Must be a valid UUID"
	case "min":
		return fmt.Sprintf("Minimum length is %s", e.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", e.Param())
	case "numeric":
		return "Must be a numeric value"
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", e.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", e.Param())
	default:
		return fmt.Sprintf("Validation failed on '%s'", e.Tag())
	}
}

// DecodeJSONObject decodes a single JSON object from r into dst. An empty body
// decodes as {}. Anything other than exactly one object (arrays, scalars, null,
// trailing data) is rejected, as are values whose types do not match dst.
func DecodeJSONObject(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			raw = json.RawMessage("{}")
		} else {
			return err
		}
	} else if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON object")
	}

	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || trimmed[0] != '{' {
		return errors.New("request body must be a JSON object")
	}
	return json.Unmarshal(raw, dst)
}

// ValidateRequest decodes the JSON request body into T, validates it, and
// writes a 400 {"error": ...} response if either step fails (413 when the body
// exceeds the configured limit). Returns (parsedStruct, true) on success or
// (nil, false) on failure.
func ValidateRequest[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var req T
	if err := DecodeJSONObject(r.Body, &req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.JSONError(w, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
			return nil, false
		}
		httpx.JSONError(w, http.StatusBadRequest, MsgInvalidBody)
		return nil, false
	}
	if err := Validate(&req); err != nil {
		msg := MsgValidationFailed
		if m, ok := any(&req).(Messager); ok {
			msg = m.ValidationMessage(FormatValidationErrors(err))
		}
		httpx.JSONError(w, http.StatusBadRequest, msg)
		return nil, false
	}
	return &req, true
}
