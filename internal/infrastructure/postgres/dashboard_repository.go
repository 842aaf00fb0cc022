package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas de solo lectura para el resumen del panel.
// Cada método es una consulta independiente; el caso de uso las ejecuta en
// paralelo. Ninguna usa cache: los totales financieros reflejan siempre el
// último estado confirmado.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de agregados.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountInvoices total de facturas.
func (r *DashboardRepo) CountInvoices(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountInvoices: %w", err)
	}
	return n, nil
}

// CountCustomers total de clientes.
func (r *DashboardRepo) CountCustomers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountCustomers: %w", err)
	}
	return n, nil
}

// SumInvoicesByStatus sumas de pagado y pendiente en un único scan agrupado
// (no dos recorridos). COALESCE devuelve cero si no hay facturas.
func (r *DashboardRepo) SumInvoicesByStatus(ctx context.Context) (repository.StatusTotals, error) {
	const query = `
	SELECT
	    COALESCE(SUM(CASE WHEN status = 'paid'    THEN amount ELSE 0 END), 0)::numeric AS paid,
	    COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0)::numeric AS pending
	FROM invoices`

	var paid, pending decimal.Decimal
	if err := r.q.QueryRow(ctx, query).Scan(&paid, &pending); err != nil {
		return repository.StatusTotals{}, fmt.Errorf("dashboard.SumInvoicesByStatus: %w", err)
	}
	return repository.StatusTotals{
		Paid:    paid.IntPart(),
		Pending: pending.IntPart(),
	}, nil
}
