package apinotes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullabilityString(t *testing.T) {
	tests := []struct {
		name string
		kind Nullability
		want string
	}{
		{"NonNullable", NonNullable, "nonnull"},
		{"Nullable", Nullable, "nullable"},
		{"Unknown", Unknown, "unknown"},
		{"OutOfRange", Nullability(7), "invalid(7)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestNullabilityValid(t *testing.T) {
	assert.True(t, NonNullable.Valid())
	assert.True(t, Nullable.Valid())
	assert.True(t, Unknown.Valid())
	assert.False(t, Nullability(3).Valid())
	assert.False(t, Nullability(255).Valid())
}

func TestInitKindString(t *testing.T) {
	tests := []struct {
		name string
		kind InitKind
		want string
	}{
		{"Infer", Infer, "infer"},
		{"ClassMethod", TreatAsClassMethod, "class-method"},
		{"Initializer", TreatAsInitializer, "initializer"},
		{"OutOfRange", InitKind(3), "invalid(3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestInitKindValid(t *testing.T) {
	assert.True(t, Infer.Valid())
	assert.True(t, TreatAsClassMethod.Valid())
	assert.True(t, TreatAsInitializer.Valid())
	assert.False(t, InitKind(3).Valid())
}
