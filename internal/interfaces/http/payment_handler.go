package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/squarem/invoicing-api/internal/application/billing"
	"github.com/squarem/invoicing-api/internal/application/dto"
)

// PaymentHandler serves the payment ledger endpoints.
type PaymentHandler struct {
	uc    *billing.PaymentUseCase
	pdfUC *billing.PDFUseCase
}

// NewPaymentHandler builds the handler.
func NewPaymentHandler(uc *billing.PaymentUseCase, pdfUC *billing.PDFUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc, pdfUC: pdfUC}
}

// Record handles POST /api/invoices/:id/payments. Recording may auto-settle
// the invoice; the response carries the refreshed payment state.
func (h *PaymentHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RecordPayment(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List handles GET /api/invoices/:id/payments, newest first.
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListPayments(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Receipt handles GET /api/payments/:id/receipt and streams the receipt PDF.
func (h *PaymentHandler) Receipt(c *fiber.Ctx) error {
	data, filename, err := h.pdfUC.ReceiptPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(data)
}
