package accountdelivery

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var ibanPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[0-9A-Z]{11,30}$`)

// ValidIBAN validates that the field is IBAN-shaped.
var ValidIBAN validator.Func = func(fl validator.FieldLevel) bool {
	if iban, ok := fl.Field().Interface().(string); ok {
		return ibanPattern.MatchString(iban)
	}

	return false
}
