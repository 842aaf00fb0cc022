package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/billing"
	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/pkg/logger"
)

// InvoiceHandler maneja las peticiones HTTP de facturas (protegido).
type InvoiceHandler struct {
	uc    *billing.InvoiceUseCase
	pdfUC *billing.PDFUseCase
	log   *logger.Logger
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdfUC *billing.PDFUseCase, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdfUC: pdfUC, log: log}
}

// List página de facturas filtrada + total de páginas para el mismo filtro.
// GET /api/invoices?query=&page=
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	query := c.Query("query")
	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "page debe ser un entero"})
		}
		page = parsed
	}

	invoices, err := h.uc.ListFiltered(c.Context(), query, page)
	if err != nil {
		return h.mapError(c, err)
	}
	totalPages, err := h.uc.CountPages(c.Context(), query)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(dto.InvoicesPageDTO{Invoices: invoices, TotalPages: totalPages})
}

// Latest las facturas más recientes para el widget del panel.
// GET /api/invoices/latest
func (h *InvoiceHandler) Latest(c *fiber.Ctx) error {
	out, err := h.uc.Latest(c.Context())
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// ExportXML todas las facturas que cumplen el filtro, como XML.
// GET /api/invoices/export?query=
func (h *InvoiceHandler) ExportXML(c *fiber.Ctx) error {
	out, err := h.uc.ExportXML(c.Context(), c.Query("query"))
	if err != nil {
		return h.mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="invoices.xml"`)
	return c.Send(out)
}

// GetByID factura para el formulario de edición (monto en unidades mayores).
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	}
	return c.JSON(out)
}

// PDF comprobante PDF de una factura.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	out, err := h.pdfUC.GenerateByID(c.Context(), c.Params("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="invoice.pdf"`)
	return c.Send(out)
}

// Create crea una factura.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update actualiza cliente, monto y estado de una factura.
// PUT /api/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una factura.
// DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// mapError mapea errores de dominio a status HTTP. Todo lo que no sea un
// error del llamador se responde como 500 genérico (el detalle queda en el log).
func (h *InvoiceHandler) mapError(c *fiber.Ctx, err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida", Fields: ve.Fields})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	}
	return internalError(c, h.log, err)
}
