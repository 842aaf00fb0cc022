package repository

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

// CustomerName par (id, name) para listas de selección.
type CustomerName struct {
	ID   string
	Name string
}

// CustomerWithTotals fila de la tabla de clientes con agregados derivados en
// lectura: conteo de facturas y sumas por estado, en centavos. Clientes sin
// facturas aparecen con totales en cero (LEFT JOIN).
type CustomerWithTotals struct {
	ID            string
	Name          string
	Email         string
	ImageURL      string
	TotalInvoices int64
	TotalPending  int64 // centavos
	TotalPaid     int64 // centavos
}

// CustomerRepository puerto de persistencia para clientes.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// ListNames todos los clientes como (id, name), orden alfabético por nombre.
	ListNames(ctx context.Context) ([]CustomerName, error)
	// ListFilteredWithTotals clientes cuyo nombre o email contiene search
	// (insensible a mayúsculas; search vacío = todos), con agregados por
	// estado, orden alfabético por nombre.
	ListFilteredWithTotals(ctx context.Context, search string) ([]CustomerWithTotals, error)
}
