package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError describes one failed validation rule on a request field
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Msg   string `json:"message"`
}

// ValidateStruct runs the validate tags of a struct and returns one entry
// per failed field. Used where gin's binding step cannot reach, e.g.
// elements of a JSON array body.
func ValidateStruct(s interface{}) []FieldError {
	var fieldErrors []FieldError

	err := validate.Struct(s)
	if err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			msg := fmt.Sprintf("Field '%s' failed validation for tag '%s'", fe.Field(), fe.Tag())
			switch fe.Tag() {
			case "required":
				msg = fmt.Sprintf("Field '%s' is required", fe.Field())
			case "gte":
				msg = fmt.Sprintf("Field '%s' must be at least %s", fe.Field(), fe.Param())
			case "gt":
				msg = fmt.Sprintf("Field '%s' must be greater than %s", fe.Field(), fe.Param())
			}
			fieldErrors = append(fieldErrors, FieldError{
				Field: fe.Field(),
				Tag:   fe.Tag(),
				Msg:   msg,
			})
		}
	}

	return fieldErrors
}
