package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/squarem/invoicing-api/internal/application/billing"
	"github.com/squarem/invoicing-api/internal/application/dto"
)

// InvoiceHandler serves the invoice endpoints, including the printable PDF
// and signed share links.
type InvoiceHandler struct {
	uc      *billing.InvoiceUseCase
	infoUC  *billing.PaymentInfoUseCase
	pdfUC   *billing.PDFUseCase
	shareUC *billing.ShareLinkUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(
	uc *billing.InvoiceUseCase,
	infoUC *billing.PaymentInfoUseCase,
	pdfUC *billing.PDFUseCase,
	shareUC *billing.ShareLinkUseCase,
) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, infoUC: infoUC, pdfUC: pdfUC, shareUC: shareUC}
}

// Create handles POST /api/invoices. The invoice number is allocated
// server-side; a 409 response means allocation retries were exhausted.
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateInvoice(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update handles PUT /api/invoices/:id. Items replace the existing set.
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateInvoice(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete handles DELETE /api/invoices/:id.
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteInvoice(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID handles GET /api/invoices/:id.
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetInvoice(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List handles GET /api/invoices?status=&q=.
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListInvoices(c.UserContext(), c.Query("status"), c.Query("q"), pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// MarkPaid handles POST /api/invoices/:id/mark-paid.
func (h *InvoiceHandler) MarkPaid(c *fiber.Ctx) error {
	out, err := h.uc.MarkPaid(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpsertPaymentInfo handles PUT /api/invoices/:id/payment-info.
func (h *InvoiceHandler) UpsertPaymentInfo(c *fiber.Ctx) error {
	var in dto.PaymentInfoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.infoUC.Upsert(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PDF handles GET /api/invoices/:id/pdf and streams the document.
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	data, filename, err := h.pdfUC.InvoicePDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(data)
}

// ShareLink handles POST /api/invoices/:id/share-link and returns a signed
// public URL for the invoice PDF.
func (h *InvoiceHandler) ShareLink(c *fiber.Ctx) error {
	out, err := h.shareUC.Issue(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SharedPDF handles GET /share/:token, the public (unauthenticated) route.
// The token alone authorizes access to exactly one invoice's PDF.
func (h *InvoiceHandler) SharedPDF(c *fiber.Ctx) error {
	invoiceID, err := h.shareUC.Verify(c.UserContext(), c.Params("token"))
	if err != nil {
		return writeError(c, err)
	}
	data, filename, err := h.pdfUC.InvoicePDF(c.UserContext(), invoiceID)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(data)
}
