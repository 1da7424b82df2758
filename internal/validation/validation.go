// Package validation checks request payloads and turns failures into
// field-level issues.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"mskn-backend/internal/apperr"
	"mskn-backend/internal/models"
)

// Issue is one field-level validation failure.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

var zipCodePattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report json names so issues line up with the payload the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Money validates as its float value so min/max tags apply.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if m, ok := field.Interface().(models.Money); ok {
			return m.Float64()
		}
		return nil
	}, models.Money{})

	_ = v.RegisterValidation("zipcode", func(fl validator.FieldLevel) bool {
		return zipCodePattern.MatchString(fl.Field().String())
	})

	return v
}

// Struct validates v and returns an *apperr.Error carrying []Issue, or nil.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperr.Validation(issues(verrs))
	}
	return apperr.Internal(err)
}

func issues(errs validator.ValidationErrors) []Issue {
	out := make([]Issue, 0, len(errs))
	for _, err := range errs {
		var message string
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("Field '%s' is required", err.Field())
		case "email":
			message = fmt.Sprintf("Field '%s' must be a valid email address", err.Field())
		case "min":
			if isNumeric(err.Kind()) {
				message = fmt.Sprintf("Field '%s' must be at least %s", err.Field(), err.Param())
			} else {
				message = fmt.Sprintf("Field '%s' must be at least %s in length", err.Field(), err.Param())
			}
		case "max":
			if isNumeric(err.Kind()) {
				message = fmt.Sprintf("Field '%s' must not exceed %s", err.Field(), err.Param())
			} else {
				message = fmt.Sprintf("Field '%s' must not exceed %s in length", err.Field(), err.Param())
			}
		case "oneof":
			message = fmt.Sprintf("Field '%s' must be one of [%s]", err.Field(), err.Param())
		case "zipcode":
			message = fmt.Sprintf("Field '%s' must be a 5 digit ZIP code, optionally followed by -1234", err.Field())
		default:
			message = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", err.Field(), err.Tag())
		}
		out = append(out, Issue{
			Field:   err.Field(),
			Message: message,
			Code:    "validation_" + err.Tag(),
		})
	}
	return out
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
