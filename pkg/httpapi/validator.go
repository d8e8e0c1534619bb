package httpapi

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator with the struct-tag conventions
// used throughout this package's request params.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds a Validator with the default tag-based rule set.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Struct validates s against its `validate:"..."` struct tags.
func (v *Validator) Struct(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		return fmt.Errorf("validation: %w", err)
	}
	return nil
}

var (
	defaultValidatorOnce sync.Once
	defaultValidator     *Validator
)

// DefaultValidator returns a process-wide singleton Validator.
func DefaultValidator() *Validator {
	defaultValidatorOnce.Do(func() {
		defaultValidator = NewValidator()
	})
	return defaultValidator
}
