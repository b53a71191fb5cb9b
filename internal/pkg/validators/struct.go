// Package validators holds the custom validator/v10 rules shared by domain entities and DTOs.
package validators

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrValidation marks errors produced by ValidateStruct.
var ErrValidation = errors.New("validation failed")

var (
	instance     *validator.Validate
	instanceOnce sync.Once
)

// Get returns the shared validator with every custom rule registered.
func Get() *validator.Validate {
	instanceOnce.Do(func() {
		v := validator.New()
		// registration only fails on empty tags or nil funcs
		_ = v.RegisterValidation("modulelevel", ModuleLevelValidation)
		instance = v
	})
	return instance
}

// ValidateStruct validates s and flattens field errors into a single readable error.
func ValidateStruct(s any) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: %v", ErrValidation, messages)
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
