package apinotes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassAnnotationDefaultNullability(t *testing.T) {
	t.Run("ZeroValueHasNoDefault", func(t *testing.T) {
		var c ClassAnnotation

		kind, ok := c.DefaultNullability()
		assert.False(t, ok)
		assert.Equal(t, Unknown, kind)
	})

	t.Run("SetAndGet", func(t *testing.T) {
		tests := []struct {
			name string
			kind Nullability
		}{
			{"NonNullable", NonNullable},
			{"Nullable", Nullable},
			{"Unknown", Unknown},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				var c ClassAnnotation
				c.SetDefaultNullability(tt.kind)

				kind, ok := c.DefaultNullability()
				require.True(t, ok)
				assert.Equal(t, tt.kind, kind)
			})
		}
	})

	t.Run("OverwriteReplaces", func(t *testing.T) {
		var c ClassAnnotation
		c.SetDefaultNullability(Nullable)
		c.SetDefaultNullability(NonNullable)

		kind, ok := c.DefaultNullability()
		require.True(t, ok)
		assert.Equal(t, NonNullable, kind)
	})

	t.Run("InvalidKindPanics", func(t *testing.T) {
		var c ClassAnnotation
		require.Panics(t, func() { c.SetDefaultNullability(Nullability(3)) })

		// A panicking call must not have declared a default.
		_, ok := c.DefaultNullability()
		assert.False(t, ok)
	})
}

func TestClassAnnotationEquality(t *testing.T) {
	var a, b ClassAnnotation
	assert.Equal(t, a, b)

	a.SetDefaultNullability(Nullable)
	assert.NotEqual(t, a, b, "declared default must differ from absent")

	b.SetDefaultNullability(Nullable)
	assert.Equal(t, a, b)

	b.SetDefaultNullability(NonNullable)
	assert.NotEqual(t, a, b)
}
