package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/squarem/invoicing-api/internal/application/billing"
)

// RouterDeps carries the wired use cases into the router.
type RouterDeps struct {
	CompanyUC     *billing.CompanyUseCase
	ClientUC      *billing.ClientUseCase
	InvoiceUC     *billing.InvoiceUseCase
	PaymentUC     *billing.PaymentUseCase
	PaymentInfoUC *billing.PaymentInfoUseCase
	PDFUC         *billing.PDFUseCase
	ShareLinkUC   *billing.ShareLinkUseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PaymentInfoUC, deps.PDFUC, deps.ShareLinkUC)
	paymentHandler := NewPaymentHandler(deps.PaymentUC, deps.PDFUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Post("/:id/mark-paid", invoiceHandler.MarkPaid)
	invoices.Put("/:id/payment-info", invoiceHandler.UpsertPaymentInfo)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)
	invoices.Post("/:id/share-link", invoiceHandler.ShareLink)
	invoices.Post("/:id/payments", paymentHandler.Record)
	invoices.Get("/:id/payments", paymentHandler.List)

	payments := api.Group("/payments")
	payments.Get("/:id/receipt", paymentHandler.Receipt)

	dashboardHandler := NewDashboardHandler(deps.InvoiceUC)
	api.Get("/dashboard", dashboardHandler.Get)

	// Public share route: the signed token is the whole authorization.
	app.Get("/share/:token", invoiceHandler.SharedPDF)
}
