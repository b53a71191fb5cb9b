package validators

import (
	"github.com/go-playground/validator/v10"
)

// Training module difficulty levels.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// ModuleLevelValidation validates a training module level. Empty values are left to `required`.
func ModuleLevelValidation(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	default:
		return false
	}
}
