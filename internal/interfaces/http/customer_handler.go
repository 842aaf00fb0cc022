package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/billing"
	"github.com/jhoicas/Finanzas-api/pkg/logger"
)

// CustomerHandler maneja las lecturas de clientes (protegido).
type CustomerHandler struct {
	uc  *billing.CustomerUseCase
	log *logger.Logger
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *billing.CustomerUseCase, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, log: log}
}

// List tabla de clientes con totales agregados, filtrada por nombre o email.
// GET /api/customers?query=
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListFiltered(c.Context(), c.Query("query"))
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListNames todos los clientes como (id, name) para listas de selección.
// GET /api/customers/names
func (h *CustomerHandler) ListNames(c *fiber.Ctx) error {
	out, err := h.uc.ListNames(c.Context())
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}
