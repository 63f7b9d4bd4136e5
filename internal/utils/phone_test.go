package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"5392174782", "5392174782"},
		{"0539 217 47 82", "5392174782"},
		{"+90 539 217 47 82", "5392174782"},
		{"90 (539) 217-47-82", "5392174782"},
		{"0090 539 217 47 82", "5392174782"},
		{"539217478", "539217478"},
		{"abc", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.input))
		})
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	inputs := []string{
		"0539 217 47 82", "+90 539 217 47 82", "0090 539 217 47 82", "909053921747",
		"00000", "9090", "0", "90", "905", "+1 (212) 555-0100", "tel: 0 212 555 01 00",
		"0 0 90 90 5392174782", "", "5", "ııı",
	}

	for _, in := range inputs {
		once := NormalizePhone(in)
		assert.Equal(t, once, NormalizePhone(once), "input %q", in)
	}
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("5392174782"))
	assert.True(t, IsValidPhone("0539 217 47 82"))
	assert.True(t, IsValidPhone("+90 539 217 47 82"))
	assert.False(t, IsValidPhone("4123456789"))
	assert.False(t, IsValidPhone("539217478"))
	assert.False(t, IsValidPhone("53921747821"))
	assert.False(t, IsValidPhone(""))
}
