package billing

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// PDFUseCase genera el comprobante PDF de una factura.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	generator    InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{invoiceRepo: invoiceRepo, customerRepo: customerRepo, generator: generator}
}

// GenerateByID busca la factura y su cliente y produce el PDF.
// Aquí el ID fue nombrado explícitamente por el llamador, así que la ausencia
// sí es un error (ErrNotFound), a diferencia del GetByID del listado.
func (uc *PDFUseCase) GenerateByID(ctx context.Context, id string) ([]byte, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(ctx, invoice.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.Generate(ctx, invoice, customer)
}
