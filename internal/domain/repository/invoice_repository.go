package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

// InvoiceWithCustomer fila compuesta factura + cliente para listados.
type InvoiceWithCustomer struct {
	ID            string
	Amount        int64 // centavos
	Date          time.Time
	Status        string
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	ImageURL      string
}

// InvoiceRepository puerto de persistencia para facturas.
//
// ListFiltered y CountFiltered comparten el mismo predicado de búsqueda
// (sustring insensible a mayúsculas, OR sobre nombre y email del cliente,
// monto y fecha renderizados como texto, y estado); cualquier divergencia
// entre ambos es un bug de paginación.
type InvoiceRepository interface {
	// ListFiltered facturas que cumplen el predicado, orden por fecha
	// descendente (empates: orden nativo del store, no determinista), con
	// LIMIT/OFFSET.
	ListFiltered(ctx context.Context, search string, limit, offset int) ([]InvoiceWithCustomer, error)
	// ListAllFiltered igual que ListFiltered pero sin paginación (export).
	ListAllFiltered(ctx context.Context, search string) ([]InvoiceWithCustomer, error)
	// CountFiltered total de filas que cumplen el predicado de ListFiltered.
	CountFiltered(ctx context.Context, search string) (int64, error)
	// Latest las n facturas más recientes.
	Latest(ctx context.Context, n int) ([]InvoiceWithCustomer, error)
	// GetByID devuelve (nil, nil) si no existe; no es un error.
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	Create(ctx context.Context, invoice *entity.Invoice) error
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id string) error
}
