package validators

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/VaibhaviS123/SafeStay/internal/domain/property"
	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/timezone"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validate returns the shared validator with the SafeStay tags registered.
func Validate() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		if err := register(validate); err != nil {
			panic(err)
		}
	})
	return validate
}

// RegisterGin adds the SafeStay tags to gin's binding validator so request
// DTOs can use them in `binding` tags. Calling it again is harmless.
func RegisterGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("gin binding engine is %T, not *validator.Validate", binding.Validator.Engine())
	}
	return register(v)
}

func register(v *validator.Validate) error {
	return errors.Join(
		v.RegisterValidation("propertytype", isPropertyType),
		v.RegisterValidation("date", isDate),
	)
}

func isPropertyType(fl validator.FieldLevel) bool {
	return property.IsValidType(fl.Field().String())
}

func isDate(fl validator.FieldLevel) bool {
	_, err := timezone.ParseDate(fl.Field().String())
	return err == nil
}

// Translate turns binding and validation failures into a validation error
// naming the first offending field.
func Translate(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return httperr.Validation("invalid_request", "Request body is malformed.")
	}

	fe := verrs[0]
	field := toSnake(fe.Field())
	return httperr.Validation(
		"invalid_"+field,
		fmt.Sprintf("Field %s failed the %q check.", field, fe.Tag()),
	)
}

// Struct validates s with the shared validator.
func Struct(s any) error {
	if err := Validate().Struct(s); err != nil {
		return Translate(err)
	}
	return nil
}

// toSnake turns a Go field name into its snake_case form, keeping acronyms
// together ("PropertyID" becomes "property_id").
func toSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
