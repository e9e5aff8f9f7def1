package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/squarem/invoicing-api/internal/domain/billing"
)

func TestIndianGrouping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"5", "5"},
		{"500", "500"},
		{"-500", "-500"},
		{"1000", "1,000"},
		{"118000", "1,18,000"},
		{"1234567", "12,34,567"},
		{"12345678", "1,23,45,678"},
		{"1000000000", "1,00,00,00,000"},
		{"-1234567", "-12,34,567"},
		// Fractional part is dropped for display.
		{"118000.75", "1,18,000"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, billing.IndianGrouping(dec(tt.in)))
		})
	}
}

func TestRupees(t *testing.T) {
	assert.Equal(t, "₹ 1,18,000", billing.Rupees(dec("118000")))
}

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "₹", billing.CurrencySymbol("INR"))
	assert.Equal(t, "$", billing.CurrencySymbol("USD"))
	assert.Equal(t, "AUD", billing.CurrencySymbol("AUD"))
}
