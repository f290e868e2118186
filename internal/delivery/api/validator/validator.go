// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"marketnav/internal/domain/entity"
	"marketnav/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// FieldError describes one invalid request field by its JSON name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is returned by Validate when a request fails its tags.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		parts = append(parts, fe.Field+" "+fe.Message)
	}

	return strings.Join(parts, "; ")
}

// Validator implements echo.Validator.
type Validator struct {
	validate *playground.Validate
}

// New builds a validator that reports fields by their JSON names and knows the
// navigation enums.
func New() *Validator {
	validate := playground.New(playground.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	// registration only fails on an empty tag or a nil func
	_ = validate.RegisterValidation("navigation_mode", func(fl playground.FieldLevel) bool {
		return entity.NavigationMode(fl.Field().String()).IsValid()
	})
	_ = validate.RegisterValidation("navigation_status", func(fl playground.FieldLevel) bool {
		return entity.NavigationStatus(fl.Field().String()).IsValid()
	})

	return &Validator{validate: validate}
}

// Validate checks i against its validate tags.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	result := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		result = append(result, FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}

	return result
}

func message(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "navigation_mode":
		return "must be one of: walking driving accessibility"
	case "navigation_status":
		return "must be one of: active paused completed cancelled"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
