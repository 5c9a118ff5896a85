package phoneutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"mobile with country code", "5511987654321", "+55 (11) 98765-4321"},
		{"mobile without country code", "11987654321", "+55 (11) 98765-4321"},
		{"landline", "1133334444", "+55 (11) 3333-4444"},
		{"already formatted", "+55 (21) 99876-5432", "+55 (21) 99876-5432"},
		{"too short returns original", "12345", "12345"},
		{"garbage returns original", "abc", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.input))
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("11987654321"))
	assert.True(t, IsValid("+55 (11) 98765-4321"))
	assert.True(t, IsValid("1133334444"))

	// mobile must start with 9 after the DDD
	assert.False(t, IsValid("11887654321"))
	// DDD below 11 does not exist
	assert.False(t, IsValid("0987654321"))
	assert.False(t, IsValid("123"))
	assert.False(t, IsValid(""))
}

func TestToWhatsApp(t *testing.T) {
	assert.Equal(t, "5511987654321", ToWhatsApp("+55 (11) 98765-4321"))
	assert.Equal(t, "5511987654321", ToWhatsApp("11987654321"))
	assert.Equal(t, "5511987654321", ToWhatsApp("5511987654321"))
	assert.Equal(t, "551133334444", ToWhatsApp("(11) 3333-4444"))
}

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "5511987654321", OnlyDigits("+55 (11) 98765-4321"))
	assert.Equal(t, "", OnlyDigits("abc"))
}
