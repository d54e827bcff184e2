package utils

import (
	"nutricare-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var slugRegex = regexp.MustCompile(constvars.RegexSlug)

func init() {
	validate = validator.New()
	validate.RegisterValidation("slug", validateSlug)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSlug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}
