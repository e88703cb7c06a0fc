package validation_test

import (
	"testing"

	"simply-jobs-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestRegisteredValidators(t *testing.T) {
	v := validator.New()
	validation.RegisterValidators(v)

	t.Run("valid_username", func(t *testing.T) {
		assert.NoError(t, v.Var("dana.smith_99@x", "valid_username"))
		assert.Error(t, v.Var("dana smith", "valid_username"))
		assert.Error(t, v.Var("", "valid_username"))
	})

	t.Run("valid_name allows unicode letters and punctuation", func(t *testing.T) {
		assert.NoError(t, v.Var("Anne-Marie O'Neill", "valid_name"))
		assert.NoError(t, v.Var("José", "valid_name"))
		assert.Error(t, v.Var("Dana <script>", "valid_name"))
	})

	t.Run("valid_phone", func(t *testing.T) {
		assert.NoError(t, v.Var("+6281234567890", "valid_phone"))
		assert.Error(t, v.Var("call me", "valid_phone"))
	})

	t.Run("no_emoji", func(t *testing.T) {
		assert.NoError(t, v.Var("plain bio text", "no_emoji"))
		assert.Error(t, v.Var("hello 😀", "no_emoji"))
	})
}
