package core

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks a struct against its `validate` tags and any registered struct rules
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// RegisterStructValidation adds a struct level rule for the given types.
// Packages call it from init so the rules are in place before any Validate call.
func RegisterStructValidation(fn validator.StructLevelFunc, types ...interface{}) {
	validate.RegisterStructValidation(fn, types...)
}
