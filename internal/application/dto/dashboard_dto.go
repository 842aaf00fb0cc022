package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Combina tres consultas independientes ejecutadas en paralelo; si alguna
// falla no se devuelve resumen parcial.
type DashboardSummaryDTO struct {
	NumberOfInvoices  int64  `json:"number_of_invoices"`
	NumberOfCustomers int64  `json:"number_of_customers"`
	TotalPaid         string `json:"total_paid"`    // formateado, ej. "$1,234.56"
	TotalPending      string `json:"total_pending"` // formateado
}

// RevenueDTO ingreso mensual para el gráfico del panel.
type RevenueDTO struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"` // centavos
}
