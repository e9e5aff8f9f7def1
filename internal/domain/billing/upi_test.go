package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/squarem/invoicing-api/internal/domain/billing"
)

func TestUPIPayload(t *testing.T) {
	got := billing.UPIPayload("squarem@okaxis", "Squarem", dec("2124"), "INR", "INV-202403-0001")
	assert.Equal(t,
		"upi://pay?pa=squarem@okaxis&pn=Squarem&am=2124.00&cu=INR&tn=Invoice INV-202403-0001",
		got)
}

func TestUPIPayload_NoUPIID(t *testing.T) {
	assert.Empty(t, billing.UPIPayload("", "Squarem", dec("100"), "INR", "INV-202403-0001"))
}
