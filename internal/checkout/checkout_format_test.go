package checkout_test

import (
	"testing"

	"github.com/Dusan-Milekic/PixelShop/internal/checkout"

	"github.com/stretchr/testify/assert"
)

func TestFormatCardNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"1234", "1234"},
		{"12345", "1234 5"},
		{"1234567890123456", "1234 5678 9012 3456"},
		{"1234 5678 9012 3456", "1234 5678 9012 3456"},
		{"12345678901234567890", "1234 5678 9012 3456"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, checkout.FormatCardNumber(tt.in), "input %q", tt.in)
	}
}

func TestFormatExpiryDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"1", "1"},
		{"12", "12/"},
		{"123", "12/3"},
		{"1226", "12/26"},
		{"12/26", "12/26"},
		{"12-26-99", "12/26"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, checkout.FormatExpiryDate(tt.in), "input %q", tt.in)
	}
}
