package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// brphonePattern accepts a Brazilian phone either formatted as
// "(DD) DDDDD-DDDD" / "(DD) DDDD-DDDD" or as 10-11 bare digits.
var brphonePattern = regexp.MustCompile(`^(\(\d{2}\) \d{4,5}-\d{4}|\d{10,11})$`)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("brphone", func(fl validator.FieldLevel) bool {
		return brphonePattern.MatchString(fl.Field().String())
	})
	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case "brphone":
				errors[field] = field + " must be a valid phone number"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
