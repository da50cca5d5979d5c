package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("payoff_method", validatePayoffMethod)
	_ = v.RegisterValidation("non_negative_amount", validateNonNegativeAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validatePayoffMethod validates that a payoff method is one of the supported
// strategies. An empty value passes so the tag can be combined with omitempty
// semantics at the request level.
func validatePayoffMethod(fl validator.FieldLevel) bool {
	method := strings.ToLower(fl.Field().String())
	if method == "" {
		return true
	}
	return method == "avalanche" || method == "snowball"
}

// validateNonNegativeAmount validates that a decimal amount is zero or
// greater
func validateNonNegativeAmount(fl validator.FieldLevel) bool {
	switch value := fl.Field().Interface().(type) {
	case decimal.Decimal:
		return !value.IsNegative()
	case *decimal.Decimal:
		return value != nil && !value.IsNegative()
	default:
		return false
	}
}
