package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
	"github.com/jhoicas/Finanzas-api/pkg/money"
)

// PageSize filas por página del listado de facturas.
const PageSize = 6

// latestCount facturas del widget "recientes".
const latestCount = 5

// InvoiceUseCase operaciones de lectura y escritura sobre facturas.
// Las lecturas no tienen efectos sobre el store y consultan datos frescos en
// cada llamada; no hay cache ni reintentos (reintentar una escritura
// financiera arriesga duplicarla).
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	exporter    InvoiceXMLExporter
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, exporter InvoiceXMLExporter) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, exporter: exporter}
}

// ListFiltered página de facturas que cumplen el predicado de búsqueda.
// page es 1-indexado; page < 1 es un error del llamador. Una página más allá
// de la última devuelve lista vacía, no un error.
func (uc *InvoiceUseCase) ListFiltered(ctx context.Context, search string, page int) ([]dto.InvoiceRowDTO, error) {
	if page < 1 {
		return nil, domain.NewValidationError("page", "page debe ser mayor o igual a 1")
	}
	offset := (page - 1) * PageSize
	rows, err := uc.invoiceRepo.ListFiltered(ctx, search, PageSize, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.InvoiceRowDTO{
			ID:            r.ID,
			Amount:        r.Amount,
			Date:          r.Date.Format("2006-01-02"),
			Status:        r.Status,
			CustomerName:  r.CustomerName,
			CustomerEmail: r.CustomerEmail,
			ImageURL:      r.ImageURL,
		})
	}
	return out, nil
}

// CountPages total de páginas para el predicado: ceil(total / PageSize).
// Usa exactamente el mismo predicado que ListFiltered.
func (uc *InvoiceUseCase) CountPages(ctx context.Context, search string) (int, error) {
	total, err := uc.invoiceRepo.CountFiltered(ctx, search)
	if err != nil {
		return 0, err
	}
	return int((total + PageSize - 1) / PageSize), nil
}

// Latest las facturas más recientes con el monto formateado para el widget.
func (uc *InvoiceUseCase) Latest(ctx context.Context) ([]dto.LatestInvoiceDTO, error) {
	rows, err := uc.invoiceRepo.Latest(ctx, latestCount)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LatestInvoiceDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.LatestInvoiceDTO{
			ID:            r.ID,
			Amount:        money.FormatCents(r.Amount),
			CustomerName:  r.CustomerName,
			CustomerEmail: r.CustomerEmail,
			ImageURL:      r.ImageURL,
		})
	}
	return out, nil
}

// GetByID factura para el formulario de edición, con el monto convertido a
// unidades mayores (la única operación que las devuelve). Devuelve (nil, nil)
// si no existe: "no encontrada" es un resultado normal, no una falla.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceFormDTO, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, nil
	}
	return &dto.InvoiceFormDTO{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     money.CentsToMajor(inv.Amount),
		Status:     inv.Status,
	}, nil
}

// Create valida y persiste una factura nueva. El monto llega en unidades
// mayores y se guarda en centavos; la fecha es la del día de creación.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	cents, err := validateSaveRequest(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	inv := &entity.Invoice{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		Amount:     cents,
		Status:     in.Status,
		Date:       now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// Update valida y actualiza cliente, monto y estado de una factura existente.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	cents, err := validateSaveRequest(in)
	if err != nil {
		return nil, err
	}
	existing, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	existing.CustomerID = in.CustomerID
	existing.Amount = cents
	existing.Status = in.Status
	existing.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return toInvoiceResponse(existing), nil
}

// Delete elimina una factura. Un fallo del store se propaga al llamador en
// lugar de registrarse y continuar: política explícita para borrados
// financieros.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	return uc.invoiceRepo.Delete(ctx, id)
}

// ExportXML todas las facturas que cumplen el predicado de búsqueda, como XML.
func (uc *InvoiceUseCase) ExportXML(ctx context.Context, search string) ([]byte, error) {
	rows, err := uc.invoiceRepo.ListAllFiltered(ctx, search)
	if err != nil {
		return nil, err
	}
	return uc.exporter.Build(rows)
}

// validateSaveRequest valida el body de creación/edición y devuelve el monto
// en centavos. El detalle por campo permite a la UI marcar la entrada.
func validateSaveRequest(in dto.SaveInvoiceRequest) (int64, error) {
	fields := map[string]string{}
	if in.CustomerID == "" {
		fields["customer_id"] = "seleccione un cliente"
	}
	cents := money.MajorToCents(in.Amount)
	if cents <= 0 {
		fields["amount"] = "ingrese un monto mayor que $0"
	}
	if !entity.ValidInvoiceStatus(in.Status) {
		fields["status"] = "seleccione un estado válido (pending o paid)"
	}
	if len(fields) > 0 {
		return 0, &domain.ValidationError{Fields: fields}
	}
	return cents, nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     inv.Amount,
		Status:     inv.Status,
		Date:       inv.Date.Format("2006-01-02"),
	}
}
