package dto

import "github.com/shopspring/decimal"

// DashboardResponse counters and recent activity for the landing screen.
type DashboardResponse struct {
	TotalInvoices  int                      `json:"total_invoices"`
	TotalRevenue   decimal.Decimal          `json:"total_revenue"`
	PaidInvoices   int                      `json:"paid_invoices"`
	UnpaidInvoices int                      `json:"unpaid_invoices"`
	OverdueCount   int                      `json:"overdue_invoices"`
	Recent         []InvoiceSummaryResponse `json:"recent_invoices"`
}
