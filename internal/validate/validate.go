// Package validate checks request payloads against their struct tags before
// any store access and reports failures as field-level validation errors.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"cfomatch/internal/domain"
)

var (
	once sync.Once
	v    *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		// Report fields by their json names so errors match the payload.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return v
}

// Struct validates s and returns a domain validation error listing every
// failing field, or nil.
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.ValidationError(err.Error(), nil)
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe)] = reason(fe)
	}
	return domain.ValidationError("invalid input", fields)
}

// fieldPath turns a namespace such as CreateInput.Billing.workingHours into
// workingHours. Go-named segments (the root struct and untagged embedded
// structs) are dropped; payload names are always lowerCamel.
func fieldPath(fe validator.FieldError) string {
	var parts []string
	for _, seg := range strings.Split(fe.Namespace(), ".") {
		if seg != "" && unicode.IsUpper(rune(seg[0])) {
			continue
		}
		parts = append(parts, seg)
	}
	if len(parts) == 0 {
		return fe.Field()
	}
	return strings.Join(parts, ".")
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "uuid", "uuid4":
		return "must be a uuid"
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or more", fe.Param())
	case "lte":
		return fmt.Sprintf("must be %s or less", fe.Param())
	case "gtefield":
		return fmt.Sprintf("must not be before %s", fe.Param())
	}
	return fmt.Sprintf("failed %s", fe.Tag())
}
