package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/analytics"
	"github.com/jhoicas/Finanzas-api/pkg/logger"
)

// DashboardHandler maneja el resumen del panel (protegido).
type DashboardHandler struct {
	uc  *analytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// Summary combina las tres consultas agregadas del panel. Si cualquiera
// falla, la respuesta es un error: nunca un resumen parcial.
// GET /api/dashboard/summary
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}
