package dto

import (
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs the custom binding validators used by the
// request DTOs. Call once at startup with gin's binding validator engine.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("membershiptype", validMembershipType)
}

func validMembershipType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Regular", "Premium":
		return true
	}
	return false
}
