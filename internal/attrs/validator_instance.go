package attrs

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	attrNamePattern   = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
	classTokenPattern = regexp.MustCompile(`^-?[_a-zA-Z][_a-zA-Z0-9-]*$`)
)

// validatorInstance configures and returns the shared validator instance used
// across the attrs package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("attr_name", func(fl validator.FieldLevel) bool {
			return attrNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("class_token", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if value == "" {
				return true // Allow empty if not required
			}
			return classTokenPattern.MatchString(value)
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator instance for use outside the
// attrs package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
