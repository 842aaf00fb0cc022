package repository

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

// RevenueRepository puerto para el dataset de ingresos mensuales.
type RevenueRepository interface {
	ListAll(ctx context.Context) ([]entity.Revenue, error)
	// Upsert inserta o reemplaza el ingreso del mes (seed idempotente).
	Upsert(ctx context.Context, rev *entity.Revenue) error
}
