package seed

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/brandkit/internal/sanitize"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used for
// advisory seed checks. Empty values pass every custom rule: they fall back to
// defaults at generation time and are reported there.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("hex6", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == "" || sanitize.CheckHex(value) == nil
		})

		_ = v.RegisterValidation("font", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == "" || KnownFont(value)
		})

		_ = v.RegisterValidation("px_positive", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if value == "" {
				return true
			}
			_, err := sanitize.CheckPositiveNumber(value)
			return err == nil
		})

		_ = v.RegisterValidation("px_nonnegative", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if value == "" {
				return true
			}
			_, err := sanitize.CheckNonNegativeNumber(value)
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}
