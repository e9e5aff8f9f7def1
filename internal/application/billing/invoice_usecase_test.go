package billing_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squarem/invoicing-api/internal/application/dto"
	"github.com/squarem/invoicing-api/internal/domain"
	"github.com/squarem/invoicing-api/internal/domain/billing"
	"github.com/squarem/invoicing-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func createRequest(companyID, clientID string) dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		CompanyID:   companyID,
		ClientID:    clientID,
		InvoiceDate: "2024-03-01",
		DueDate:     "2024-03-31",
		Items: []dto.InvoiceItemRequest{
			{
				Description: "Granite flooring",
				UnitType:    entity.UnitSqFt,
				Quantity:    dec("10"),
				Rate:        dec("100"),
				Discount:    dec("10"),
				TaxRate:     dec("18"),
			},
		},
	}
}

func TestCreateInvoice(t *testing.T) {
	env := newTestEnv()
	companyID, clientID := env.seedCompanyAndClient()

	resp, err := env.invoiceUC.CreateInvoice(context.Background(), createRequest(companyID, clientID))
	require.NoError(t, err)

	period := billing.PeriodOf(time.Now())
	assert.Equal(t, fmt.Sprintf("INV-%s-0001", period), resp.InvoiceNumber)
	assert.Equal(t, entity.StatusDraft, resp.Status)
	assert.Equal(t, entity.CurrencyINR, resp.Currency)
	assert.True(t, resp.Subtotal.Equal(dec("1000.00")), "subtotal %s", resp.Subtotal)
	assert.True(t, resp.DiscountAmount.Equal(dec("100.00")), "discount %s", resp.DiscountAmount)
	assert.True(t, resp.TaxAmount.Equal(dec("162.00")), "tax %s", resp.TaxAmount)
	assert.True(t, resp.Total.Equal(dec("1062.00")), "total %s", resp.Total)
	assert.True(t, resp.AmountPaid.IsZero())
	assert.True(t, resp.BalanceDue.Equal(dec("1062.00")))
	assert.Equal(t, "Acme Builders", resp.ClientName)
	assert.Contains(t, resp.UPIPayload, "pa=squarem@okaxis")
	assert.Contains(t, resp.UPIPayload, "am=1062.00")
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].Amount.Equal(dec("1062.00")))

	items, err := env.invoiceRepo.GetItems(resp.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCreateInvoiceValidation(t *testing.T) {
	env := newTestEnv()
	companyID, clientID := env.seedCompanyAndClient()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*dto.CreateInvoiceRequest)
		field  string
	}{
		{"missing company", func(r *dto.CreateInvoiceRequest) { r.CompanyID = "" }, "company_id"},
		{"missing client", func(r *dto.CreateInvoiceRequest) { r.ClientID = "" }, "client_id"},
		{"no items", func(r *dto.CreateInvoiceRequest) { r.Items = nil }, "items"},
		{"bad date", func(r *dto.CreateInvoiceRequest) { r.InvoiceDate = "01/03/2024" }, "invoice_date"},
		{"bad status", func(r *dto.CreateInvoiceRequest) { r.Status = "archived" }, "status"},
		{"bad currency", func(r *dto.CreateInvoiceRequest) { r.Currency = "BTC" }, "currency"},
		{"negative rate", func(r *dto.CreateInvoiceRequest) { r.Items[0].Rate = dec("-5") }, "rate"},
		{"empty description", func(r *dto.CreateInvoiceRequest) { r.Items[0].Description = "" }, "description"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createRequest(companyID, clientID)
			tt.mutate(&req)
			_, err := env.invoiceUC.CreateInvoice(ctx, req)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestCreateInvoiceUnknownCompany(t *testing.T) {
	env := newTestEnv()
	_, clientID := env.seedCompanyAndClient()

	_, err := env.invoiceUC.CreateInvoice(context.Background(), createRequest("no-such-company", clientID))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateInvoiceSequentialNumbers(t *testing.T) {
	env := newTestEnv()
	companyID, clientID := env.seedCompanyAndClient()
	ctx := context.Background()

	period := billing.PeriodOf(time.Now())
	for i := 1; i <= 3; i++ {
		resp, err := env.invoiceUC.CreateInvoice(ctx, createRequest(companyID, clientID))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("INV-%s-%04d", period, i), resp.InvoiceNumber)
	}
}

func TestCreateInvoiceConcurrentAllocation(t *testing.T) {
	env := newTestEnv()
	companyID, clientID := env.seedCompanyAndClient()
	ctx := context.Background()

	const n = 25
	numbers := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := env.invoiceUC.CreateInvoice(ctx, createRequest(companyID, clientID))
			if err != nil {
				t.Errorf("create: %v", err)
				return
			}
			numbers <- resp.InvoiceNumber
		}()
	}
	wg.Wait()
	close(numbers)

	got := make([]string, 0, n)
	for num := range numbers {
		got = append(got, num)
	}
	require.Len(t, got, n)
	sort.Strings(got)
	period := billing.PeriodOf(time.Now())
	for i, num := range got {
		assert.Equal(t, fmt.Sprintf("INV-%s-%04d", period, i+1), num)
	}
}

func TestCreateInvoiceRetriesOnDuplicate(t *testing.T) {
	env := newTestEnv()
	companyID, clientID := env.seedCompanyAndClient()
	env.invoiceRepo.failCreates = 2

	resp, err := env.invoiceUC.CreateInvoice(context.Background(), createRequest(companyID, clientID))
	require.NoError(t, err)
	// two collisions consumed sequences 1 and 2
	period := billing.PeriodOf(time.Now())
	assert.Equal(t, fmt.Sprintf("INV-%s-0003", period), resp.InvoiceNumber)
}

func TestCreateInvoiceConflictAfterRetriesExhausted(t *testing.T) {
	env := newTestEnv()
	companyID, clientID := env.seedCompanyAndClient()
	env.invoiceRepo.failCreates = 3

	_, err := env.invoiceUC.CreateInvoice(context.Background(), createRequest(companyID, clientID))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdateInvoiceReplacesItemsAndTotals(t *testing.T) {
	env := newTestEnv()
	companyID, clientID := env.seedCompanyAndClient()
	ctx := context.Background()

	created, err := env.invoiceUC.CreateInvoice(ctx, createRequest(companyID, clientID))
	require.NoError(t, err)

	updated, err := env.invoiceUC.UpdateInvoice(ctx, created.ID, dto.UpdateInvoiceRequest{
		InvoiceDate: "2024-03-05",
		DueDate:     "2024-04-05",
		Status:      entity.StatusSent,
		Items: []dto.InvoiceItemRequest{
			{Description: "Wall tiling", UnitType: entity.UnitSqM, Quantity: dec("20"), Rate: dec("50")},
			{Description: "Site cleanup", UnitType: entity.UnitLumpSum, Quantity: dec("1"), Rate: dec("1000")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, created.InvoiceNumber, updated.InvoiceNumber, "number must survive edits")
	assert.Equal(t, entity.StatusSent, updated.Status)
	assert.True(t, updated.Total.Equal(dec("2000.00")), "total %s", updated.Total)
	require.Len(t, updated.Items, 2)
	assert.Equal(t, "Wall tiling", updated.Items[0].Description)
}

func TestMarkPaid(t *testing.T) {
	env := newTestEnv()
	companyID, clientID := env.seedCompanyAndClient()
	ctx := context.Background()

	created, err := env.invoiceUC.CreateInvoice(ctx, createRequest(companyID, clientID))
	require.NoError(t, err)

	resp, err := env.invoiceUC.MarkPaid(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, resp.Status)
	assert.Equal(t, entity.StatusPaid, resp.DisplayStatus)
	assert.True(t, resp.AmountPaid.Equal(resp.Total))
	assert.True(t, resp.BalanceDue.IsZero())
}

func TestListInvoicesFiltersStoredStatus(t *testing.T) {
	env := newTestEnv()
	companyID, clientID := env.seedCompanyAndClient()
	ctx := context.Background()

	first, err := env.invoiceUC.CreateInvoice(ctx, createRequest(companyID, clientID))
	require.NoError(t, err)
	_, err = env.invoiceUC.CreateInvoice(ctx, createRequest(companyID, clientID))
	require.NoError(t, err)
	_, err = env.invoiceUC.MarkPaid(ctx, first.ID)
	require.NoError(t, err)

	paid, err := env.invoiceUC.ListInvoices(ctx, entity.StatusPaid, "", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, first.ID, paid[0].ID)

	all, err := env.invoiceUC.ListInvoices(ctx, "", "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = env.invoiceUC.ListInvoices(ctx, "archived", "", dto.PageRequest{})
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDeleteInvoice(t *testing.T) {
	env := newTestEnv()
	companyID, clientID := env.seedCompanyAndClient()
	ctx := context.Background()

	created, err := env.invoiceUC.CreateInvoice(ctx, createRequest(companyID, clientID))
	require.NoError(t, err)

	require.NoError(t, env.invoiceUC.DeleteInvoice(ctx, created.ID))
	_, err = env.invoiceUC.GetInvoice(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, env.invoiceUC.DeleteInvoice(ctx, created.ID), domain.ErrNotFound)
}

func TestDashboard(t *testing.T) {
	env := newTestEnv()
	companyID, clientID := env.seedCompanyAndClient()
	ctx := context.Background()

	first, err := env.invoiceUC.CreateInvoice(ctx, createRequest(companyID, clientID))
	require.NoError(t, err)
	_, err = env.invoiceUC.CreateInvoice(ctx, createRequest(companyID, clientID))
	require.NoError(t, err)
	third, err := env.invoiceUC.CreateInvoice(ctx, createRequest(companyID, clientID))
	require.NoError(t, err)
	_, err = env.invoiceUC.MarkPaid(ctx, first.ID)
	require.NoError(t, err)

	// Cancelled invoices count as unpaid but never as overdue.
	cancelled, err := env.invoiceRepo.GetByID(third.ID)
	require.NoError(t, err)
	cancelled.Status = entity.StatusCancelled
	require.NoError(t, env.invoiceRepo.Update(cancelled))

	resp, err := env.invoiceUC.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalInvoices)
	assert.Equal(t, 1, resp.PaidInvoices)
	assert.Equal(t, 2, resp.UnpaidInvoices)
	// the remaining draft is past its 2024 due date.
	assert.Equal(t, 1, resp.OverdueCount)
	assert.True(t, resp.TotalRevenue.Equal(dec("3186.00")), "revenue %s", resp.TotalRevenue)
	assert.Len(t, resp.Recent, 3)
}
