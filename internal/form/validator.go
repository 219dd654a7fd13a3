// Package form parses and validates the venue, artist and show web forms.
// Parsing normalizes raw POST values (checkbox "on"/"off" literals, repeated
// genre fields, timestamp strings) into typed structs; validation enforces
// the server-side rules the forms promise: required fields non-empty,
// well-formed URLs, enumerated states and genres, phone format, and the
// 500-character description cap.
package form

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// phoneRegex accepts the directory's phone format, digits in 3-3-4 groups
// with optional dashes (e.g. "123-123-1234" or "1231231234").
var phoneRegex = regexp.MustCompile(`^\d{3}-?\d{3}-?\d{4}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("phone", validatePhone)
	_ = v.RegisterValidation("usstate", validateState)
	_ = v.RegisterValidation("genre", validateGenre)
	return v
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

func validateState(fl validator.FieldLevel) bool {
	_, ok := stateSet[fl.Field().String()]
	return ok
}

func validateGenre(fl validator.FieldLevel) bool {
	_, ok := genreSet[fl.Field().String()]
	return ok
}

// checkStruct runs the validator and rewrites the first failure into a
// message suitable for a flash banner.
func checkStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) || len(vErrs) == 0 {
		return err
	}
	ve := vErrs[0]
	switch ve.Tag() {
	case "required", "min":
		return fmt.Errorf("%s is required", ve.Field())
	case "max":
		return fmt.Errorf("%s exceeds the maximum length", ve.Field())
	case "url":
		return fmt.Errorf("%s must be a valid URL", ve.Field())
	case "phone":
		return fmt.Errorf("%s must look like 123-123-1234", ve.Field())
	case "usstate":
		return fmt.Errorf("%s must be a two-letter state code", ve.Field())
	case "genre":
		return fmt.Errorf("%s contains an unknown genre", ve.Field())
	case "gt":
		return fmt.Errorf("%s must be a positive id", ve.Field())
	default:
		return fmt.Errorf("%s is invalid", ve.Field())
	}
}
