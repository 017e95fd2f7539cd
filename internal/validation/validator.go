// Package validation wraps a shared go-playground/validator instance with
// the custom tags used by the JSON API query structs:
//
//	province  value is one of domain.Provinces
//	category  value is one of domain.Categories
//	slug      lowercase letters, digits and single hyphens
//
// Errors come back as a single message suitable for a 422 response body.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/nightowldevx/lakbayregion8/internal/domain"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Get returns the shared validator, registering custom tags on first use.
func Get() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Use the `query` tag as the field name so messages match the URL.
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("query"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})

		mustRegister("province", func(fl validator.FieldLevel) bool {
			return domain.Province(fl.Field().String()).Valid()
		})
		mustRegister("category", func(fl validator.FieldLevel) bool {
			return domain.Category(fl.Field().String()).Valid()
		})
		mustRegister("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})
	})
	return validate
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// Struct validates s and returns an error wrapping domain.ErrValidation when
// any field fails. The message lists every failing field.
func Struct(s any) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, translate(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(msgs, "; "))
}

func translate(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "province":
		return fmt.Sprintf("%s must be one of: %s", field, joinProvinces())
	case "category":
		return fmt.Sprintf("%s must be one of: %s", field, joinCategories())
	case "slug":
		return fmt.Sprintf("%s must be a lowercase hyphenated slug", field)
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "required":
		return fmt.Sprintf("%s is required", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

func joinProvinces() string {
	out := make([]string, len(domain.Provinces))
	for i, p := range domain.Provinces {
		out[i] = string(p)
	}
	return strings.Join(out, ", ")
}

func joinCategories() string {
	out := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		out[i] = string(c)
	}
	return strings.Join(out, ", ")
}
