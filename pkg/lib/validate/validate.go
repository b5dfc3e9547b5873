package validate

import (
	"reflect"
	"strings"

	"league/internal/models"
	"league/pkg/lib/patch"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

// New создает валидатор, который понимает patch.Field и тег position.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В ошибках используем имена из json-тегов.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if f, ok := field.Interface().(interface{ ValidationValue() interface{} }); ok {
			return f.ValidationValue()
		}
		return nil
	},
		patch.Field[string]{},
		patch.Field[float64]{},
		patch.Field[uint]{},
		patch.Field[datatypes.Date]{},
		patch.Field[models.Position]{},
		patch.Field[models.Role]{},
	)

	_ = v.RegisterValidation("position", func(fl validator.FieldLevel) bool {
		switch val := fl.Field().Interface().(type) {
		case models.Position:
			return val.IsValid()
		case string:
			return models.Position(val).IsValid()
		}
		return false
	})

	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		switch val := fl.Field().Interface().(type) {
		case models.Role:
			return val.IsValid()
		case string:
			return models.Role(val).IsValid()
		}
		return false
	})

	return v
}
