package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squarem/invoicing-api/internal/application/dto"
	"github.com/squarem/invoicing-api/internal/domain"
	"github.com/squarem/invoicing-api/internal/domain/entity"
)

func TestRecordPaymentAccumulatesAndSettles(t *testing.T) {
	env := newTestEnv()
	companyID, clientID := env.seedCompanyAndClient()
	ctx := context.Background()

	// total is 1062.00
	inv, err := env.invoiceUC.CreateInvoice(ctx, createRequest(companyID, clientID))
	require.NoError(t, err)

	first, err := env.paymentUC.RecordPayment(ctx, inv.ID, dto.RecordPaymentRequest{
		Amount: dec("500.00"),
		Method: entity.MethodUPI,
	})
	require.NoError(t, err)
	assert.True(t, first.AmountPaid.Equal(dec("500.00")))
	assert.True(t, first.BalanceDue.Equal(dec("562.00")))
	assert.NotEqual(t, entity.StatusPaid, first.InvoiceStatus)

	second, err := env.paymentUC.RecordPayment(ctx, inv.ID, dto.RecordPaymentRequest{
		Amount: dec("562.00"),
	})
	require.NoError(t, err)
	assert.True(t, second.AmountPaid.Equal(dec("1062.00")))
	assert.True(t, second.BalanceDue.IsZero())
	assert.Equal(t, entity.StatusPaid, second.InvoiceStatus)
	assert.Equal(t, entity.MethodCash, second.Payment.Method, "method defaults to cash")

	got, err := env.invoiceUC.GetInvoice(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, got.Status)
	assert.Len(t, got.Payments, 2)
}

func TestRecordPaymentOverpaymentStillSettles(t *testing.T) {
	env := newTestEnv()
	companyID, clientID := env.seedCompanyAndClient()
	ctx := context.Background()

	inv, err := env.invoiceUC.CreateInvoice(ctx, createRequest(companyID, clientID))
	require.NoError(t, err)

	resp, err := env.paymentUC.RecordPayment(ctx, inv.ID, dto.RecordPaymentRequest{Amount: dec("2000.00")})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, resp.InvoiceStatus)
	assert.True(t, resp.AmountPaid.Equal(dec("2000.00")))
	assert.True(t, resp.BalanceDue.Equal(dec("-938.00")))
}

func TestRecordPaymentValidation(t *testing.T) {
	env := newTestEnv()
	companyID, clientID := env.seedCompanyAndClient()
	ctx := context.Background()

	inv, err := env.invoiceUC.CreateInvoice(ctx, createRequest(companyID, clientID))
	require.NoError(t, err)

	var verr *domain.ValidationError

	_, err = env.paymentUC.RecordPayment(ctx, inv.ID, dto.RecordPaymentRequest{Amount: dec("0")})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "amount", verr.Field)

	_, err = env.paymentUC.RecordPayment(ctx, inv.ID, dto.RecordPaymentRequest{Amount: dec("-10")})
	assert.ErrorAs(t, err, &verr)

	_, err = env.paymentUC.RecordPayment(ctx, inv.ID, dto.RecordPaymentRequest{Amount: dec("10"), Method: "barter"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "method", verr.Field)

	_, err = env.paymentUC.RecordPayment(ctx, inv.ID, dto.RecordPaymentRequest{Amount: dec("10"), PaidOn: "31-03-2024"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "paid_on", verr.Field)

	_, err = env.paymentUC.RecordPayment(ctx, "no-such-invoice", dto.RecordPaymentRequest{Amount: dec("10")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListPaymentsNewestFirst(t *testing.T) {
	env := newTestEnv()
	companyID, clientID := env.seedCompanyAndClient()
	ctx := context.Background()

	inv, err := env.invoiceUC.CreateInvoice(ctx, createRequest(companyID, clientID))
	require.NoError(t, err)

	_, err = env.paymentUC.RecordPayment(ctx, inv.ID, dto.RecordPaymentRequest{Amount: dec("100"), PaidOn: "2024-03-05"})
	require.NoError(t, err)
	_, err = env.paymentUC.RecordPayment(ctx, inv.ID, dto.RecordPaymentRequest{Amount: dec("200"), PaidOn: "2024-03-10"})
	require.NoError(t, err)

	payments, err := env.paymentUC.ListPayments(ctx, inv.ID)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "2024-03-10", payments[0].PaidOn)
	assert.Equal(t, "2024-03-05", payments[1].PaidOn)

	_, err = env.paymentUC.ListPayments(ctx, "no-such-invoice")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
