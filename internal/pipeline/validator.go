package pipeline

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/tair/backoffice/internal/apperr"
)

// NewValidator returns a validator that reports fields by their json names and
// compares decimal amounts numerically.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return v
}

// ValidationError converts validator output into an InvalidInput naming the first failing field.
func ValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperr.InvalidInput("Invalid request")
	}

	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return apperr.InvalidInputf("%s is required", field)
	case "gt":
		return apperr.InvalidInputf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return apperr.InvalidInputf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return apperr.InvalidInputf("%s must be one of [%s]", field, fe.Param())
	case "email":
		return apperr.InvalidInputf("%s must be a valid email", field)
	case "min":
		return apperr.InvalidInputf("%s must have at least %s entries", field, fe.Param())
	case "max":
		return apperr.InvalidInputf("%s must be at most %s characters", field, fe.Param())
	case "len":
		return apperr.InvalidInputf("%s must be exactly %s characters", field, fe.Param())
	default:
		return apperr.InvalidInput(fmt.Sprintf("%s failed %s validation", field, fe.Tag()))
	}
}
