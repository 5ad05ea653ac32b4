package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one validation failure, shaped for the {errors: [...]}
// response body.
type FieldError struct {
	Msg  string `json:"msg"`
	Path string `json:"path"`
}

// ErrorsResponse is the 400 envelope shared by all validated inputs.
type ErrorsResponse struct {
	Errors []FieldError `json:"errors"`
}

// FromBindingError converts a gin binding failure into field errors,
// looking up per-field messages by struct field name. Failures that carry
// no field information, such as malformed JSON, map to a single error
// under the fallback path.
func FromBindingError(err error, messages map[string]string, fallbackPath string) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Msg: "Invalid request body", Path: fallbackPath}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()]
		if !ok {
			msg = "Invalid value"
		}
		out = append(out, FieldError{Msg: msg, Path: strings.ToLower(fe.Field())})
	}
	return out
}
