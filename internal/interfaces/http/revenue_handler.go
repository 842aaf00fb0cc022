package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/analytics"
	"github.com/jhoicas/Finanzas-api/pkg/logger"
)

// RevenueHandler maneja el dataset de ingresos mensuales (protegido).
type RevenueHandler struct {
	uc  *analytics.RevenueUseCase
	log *logger.Logger
}

// NewRevenueHandler construye el handler.
func NewRevenueHandler(uc *analytics.RevenueUseCase, log *logger.Logger) *RevenueHandler {
	return &RevenueHandler{uc: uc, log: log}
}

// List los doce registros de ingreso mensual para el gráfico, en centavos.
// GET /api/revenue
func (h *RevenueHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}
