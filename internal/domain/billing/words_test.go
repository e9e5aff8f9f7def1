package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/squarem/invoicing-api/internal/domain/billing"
)

func TestAmountInWords_INR(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "Zero Rupees Only"},
		{"1062.00", "One Thousand And Sixty-Two Rupees Only"},
		{"2124.00", "Two Thousand, One Hundred And Twenty-Four Rupees Only"},
		{"118000", "One Lakh, Eighteen Thousand Rupees Only"},
		{"1234567", "Twelve Lakh, Thirty-Four Thousand, Five Hundred And Sixty-Seven Rupees Only"},
		{"10000000", "One Crore Rupees Only"},
		{"1062.50", "One Thousand And Sixty-Two and Fifty Paise Rupees Only"},
		{"0.05", "Zero and Five Paise Rupees Only"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := billing.AmountInWords(dec(tt.in), "INR")
			assert.False(t, got.Fallback)
			assert.Equal(t, tt.want, got.Words)
		})
	}
}

func TestAmountInWords_OtherCurrency(t *testing.T) {
	got := billing.AmountInWords(dec("1062"), "USD")
	assert.False(t, got.Fallback)
	assert.Equal(t, "One Thousand And Sixty-Two Only", got.Words)
}

// Amounts that cannot be rendered as words come back as an explicit fallback,
// not a silently swallowed error.
func TestAmountInWords_Fallback(t *testing.T) {
	neg := billing.AmountInWords(dec("-100"), "INR")
	assert.True(t, neg.Fallback)
	assert.Equal(t, "INR -100.00 Only", neg.Words)

	huge := billing.AmountInWords(dec("10000000000000000"), "INR")
	assert.True(t, huge.Fallback)
}
