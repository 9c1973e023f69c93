// Package app holds the page-level flows of the client: each flow is the
// logic a page runs between user input and the API call, with the rendering
// left to the caller.
package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// checkInput runs struct validation and flattens the result into a single
// human-readable message, the way the original forms surfaced one inline
// error line per submission.
func checkInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate input: %w", err)
	}
	first := fieldErrs[0]
	field := strings.ToLower(first.Field())
	switch first.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "email":
		return fmt.Errorf("%s must be a valid email address", field)
	case "gt", "gte", "min":
		return fmt.Errorf("%s must be at least %s", field, first.Param())
	case "lte", "max":
		return fmt.Errorf("%s must be at most %s", field, first.Param())
	default:
		return fmt.Errorf("%s is invalid", field)
	}
}
