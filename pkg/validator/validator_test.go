package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type phoneForm struct {
	Phone string `validate:"required,brphone"`
}

func TestBrphoneValidation(t *testing.T) {
	v := NewValidator()

	valid := []string{
		"(11) 98765-4321",
		"(11) 3265-4321",
		"11987654321",
		"1132654321",
	}
	for _, phone := range valid {
		assert.NoError(t, v.Validate(phoneForm{Phone: phone}), "expected %q to be valid", phone)
	}

	invalid := []string{
		"",
		"12345",
		"123456789012",
		"(11)98765-4321",
		"11 98765-4321",
		"phone",
		"+55 11 98765-4321",
	}
	for _, phone := range invalid {
		assert.Error(t, v.Validate(phoneForm{Phone: phone}), "expected %q to be rejected", phone)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(phoneForm{Phone: "nope"})
	require.Error(t, err)

	fields := v.FormatValidationErrors(err)
	assert.Equal(t, "Phone must be a valid phone number", fields["Phone"])
}
