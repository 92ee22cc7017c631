package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"formatted mobile", "(11) 98765-4321", "11987654321"},
		{"bare digits", "11987654321", "11987654321"},
		{"international prefix", "+55 11 98765-4321", "5511987654321"},
		{"letters dropped", "abc123", "123"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.input))
		})
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"11 digit mobile", "11987654321", "(11) 98765-4321"},
		{"10 digit landline", "1132654321", "(11) 3265-4321"},
		{"already formatted", "(11) 98765-4321", "(11) 98765-4321"},
		{"too short returned unchanged", "12345", "12345"},
		{"too long returned unchanged", "551198765432100", "551198765432100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPhone(tt.input))
		})
	}
}

func TestFormatPhoneNormalizeRoundTrip(t *testing.T) {
	// Formatting never changes which booking a phone resolves to.
	for _, raw := range []string{"11987654321", "1132654321", "(21) 99999-0000"} {
		assert.Equal(t, NormalizePhone(raw), NormalizePhone(FormatPhone(raw)))
	}
}
