package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"0912345678", true},
		{"+959123456", true},
		{"12", false},
		{"09-123-456", false},
		{"abc", false},
		{"", false},
		{"++959", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPhone(tt.in), tt.in)
	}
}

func TestRegisterOn(t *testing.T) {
	t.Parallel()

	type req struct {
		Phone string `validate:"required,phone"`
	}

	v := validator.New()
	require.NoError(t, RegisterOn(v))

	assert.NoError(t, v.Struct(req{Phone: "0912345678"}))
	assert.Error(t, v.Struct(req{Phone: "not-a-number"}))
}

func TestRegister_Idempotent(t *testing.T) {
	require.NoError(t, Register())
	require.NoError(t, Register())
}
