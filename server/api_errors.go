package userdemoserver

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bindErrorField names the lowercased field behind a binding failure, or ""
// when the failure is not tied to a single field (malformed JSON, empty body).
func bindErrorField(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return strings.ToLower(verrs[0].Field())
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return strings.ToLower(typeErr.Field)
	}
	return ""
}
