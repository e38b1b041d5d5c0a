package validate

import (
	"eventsManager/internal/models"

	"github.com/go-playground/validator/v10"
)

var v = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return models.Category(fl.Field().String()).IsStored()
	})

	return v
}

// Struct validates s against its `validate` tags. The "category" tag accepts
// any category an event may be stored with.
func Struct(s interface{}) error {
	return v.Struct(s)
}
