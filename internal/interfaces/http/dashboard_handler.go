package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/squarem/invoicing-api/internal/application/billing"
)

// DashboardHandler serves the aggregated landing-screen endpoint.
type DashboardHandler struct {
	uc *billing.InvoiceUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *billing.InvoiceUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get handles GET /api/dashboard.
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
