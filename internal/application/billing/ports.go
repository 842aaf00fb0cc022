package billing

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// InvoicePDFGenerator genera el comprobante PDF de una factura.
type InvoicePDFGenerator interface {
	Generate(ctx context.Context, invoice *entity.Invoice, customer *entity.Customer) ([]byte, error)
}

// InvoiceXMLExporter construye la representación XML de un conjunto de facturas.
type InvoiceXMLExporter interface {
	Build(rows []repository.InvoiceWithCustomer) ([]byte, error)
}
