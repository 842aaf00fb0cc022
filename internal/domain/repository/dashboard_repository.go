package repository

import "context"

// StatusTotals sumas de montos de factura agrupadas por estado, en centavos.
// Se calcula en un único scan agrupado, no en dos recorridos.
type StatusTotals struct {
	Paid    int64
	Pending int64
}

// DashboardRepository consultas agregadas de solo lectura para el resumen.
// Las tres son independientes entre sí (ningún resultado alimenta a otro),
// lo que permite ejecutarlas en paralelo sin restricciones de orden.
type DashboardRepository interface {
	CountInvoices(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
	SumInvoicesByStatus(ctx context.Context) (StatusTotals, error)
}
