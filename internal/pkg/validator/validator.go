package validator

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustom installs domain validations on gin's binding engine so they
// can be used in `binding` struct tags.
func RegisterCustom() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("validator: unexpected binding engine")
	}
	return v.RegisterValidation("currency", isCurrencyCode)
}

// Details flattens a binding error into a field -> failed-rule map, or nil
// when the error carries no field information.
func Details(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

// isCurrencyCode accepts a three-letter uppercase code ("USD", "EUR").
func isCurrencyCode(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
