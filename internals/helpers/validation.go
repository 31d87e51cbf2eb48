package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

// ValidationErrorsToMap flattens validator errors into the field → messages
// shape used by JsonValidationError.
func ValidationErrorsToMap(err error) map[string][]string {
	out := map[string][]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		msg := "failed on '" + fe.Tag() + "'"
		if fe.Param() != "" {
			msg += " (" + fe.Param() + ")"
		}
		out[field] = append(out[field], msg)
	}
	return out
}
