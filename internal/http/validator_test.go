package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	type sample struct {
		Username string `validate:"required,min=3"`
		Rating   int    `validate:"gte=0,lte=5"`
	}

	t.Run("valid", func(t *testing.T) {
		errs := ValidateStruct(sample{Username: "alice", Rating: 5})
		assert.Empty(t, errs)
	})

	t.Run("missing required field", func(t *testing.T) {
		errs := ValidateStruct(sample{Rating: 3})
		assert.Len(t, errs, 1)
		assert.Equal(t, "username", errs[0].Field)
		assert.Contains(t, errs[0].Message, "required")
	})

	t.Run("rating out of range", func(t *testing.T) {
		errs := ValidateStruct(sample{Username: "alice", Rating: 6})
		assert.Len(t, errs, 1)
		assert.Equal(t, "rating", errs[0].Field)
		assert.Contains(t, errs[0].Message, "at most 5")
	})

	t.Run("multiple failures reported per field", func(t *testing.T) {
		errs := ValidateStruct(sample{Rating: -1})
		assert.Len(t, errs, 2)
	})
}
