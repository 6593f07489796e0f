package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobforge/jobforge/internal/utils"
)

func TestValidatorFactory(t *testing.T) {
	t.Run("should accept strings matching the expression", func(t *testing.T) {
		validate := utils.ValidatorFactory.NewFromRegex(`^[a-z0-9_\-.]+$`, "invalid name format")
		assert.NoError(t, validate("app-base.nightly"))
	})
	t.Run("should return the configured message on mismatch", func(t *testing.T) {
		validate := utils.ValidatorFactory.NewFromRegex(`^[a-z0-9_\-.]+$`, "invalid name format")
		err := validate("app base")
		assert.EqualError(t, err, "invalid name format")
	})
	t.Run("should reject non string values", func(t *testing.T) {
		validate := utils.ValidatorFactory.NewFromRegex(`.*`, "unused")
		assert.Error(t, validate(42))
	})
}
