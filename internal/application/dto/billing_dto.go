package dto

import "github.com/shopspring/decimal"

// InvoiceRowDTO fila del listado de facturas (join con cliente).
// Amount viaja en centavos; la UI decide el formateo de tabla.
type InvoiceRowDTO struct {
	ID            string `json:"id"`
	Amount        int64  `json:"amount"`
	Date          string `json:"date"` // ISO, YYYY-MM-DD
	Status        string `json:"status"`
	CustomerName  string `json:"name"`
	CustomerEmail string `json:"email"`
	ImageURL      string `json:"image_url"`
}

// InvoicesPageDTO respuesta de GET /api/invoices: página + total de páginas.
type InvoicesPageDTO struct {
	Invoices   []InvoiceRowDTO `json:"invoices"`
	TotalPages int             `json:"total_pages"`
}

// LatestInvoiceDTO factura reciente con el monto ya formateado para el widget.
type LatestInvoiceDTO struct {
	ID            string `json:"id"`
	Amount        string `json:"amount"` // ej. "$157.95"
	CustomerName  string `json:"name"`
	CustomerEmail string `json:"email"`
	ImageURL      string `json:"image_url"`
}

// InvoiceFormDTO factura para el formulario de edición. Es la única salida
// del sistema con el monto en unidades mayores (dólares, no centavos).
type InvoiceFormDTO struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"` // unidades mayores
	Status     string          `json:"status"`
}

// SaveInvoiceRequest body de POST /api/invoices y PUT /api/invoices/:id.
// Amount llega en unidades mayores (lo que teclea el usuario) y se guarda
// en centavos.
type SaveInvoiceRequest struct {
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
}

// InvoiceResponse factura persistida (montos en centavos).
type InvoiceResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
	Date       string `json:"date"`
}

// CustomerNameDTO par (id, name) para selección.
type CustomerNameDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomerTableDTO fila de la tabla de clientes con totales formateados.
// Los clientes sin facturas aparecen con "$0.00".
type CustomerTableDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}
