package validator

import (
	"reflect"
	"strings"

	"bookify/internal/pkg/apperr"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate struct fields, keyed by json field name
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		out[fieldPath(fe)] = fe.Tag()
	}
	return out
}

// Check wraps Validate into a validation error, or nil.
func Check(v interface{}) error {
	details := Validate(v)
	if details == nil {
		return nil
	}
	return apperr.Validation("VALIDATION_ERROR", "Invalid request body").WithDetails(details)
}

// Email reports whether s is a syntactically valid address.
func Email(s string) bool {
	return validate.Var(s, "required,email") == nil
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
