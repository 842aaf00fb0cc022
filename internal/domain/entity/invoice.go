package entity

import "time"

// Estados válidos de una factura.
const (
	InvoiceStatusPending = "pending" // emitida, pago pendiente
	InvoiceStatusPaid    = "paid"    // pagada
)

// Invoice representa una factura emitida a un cliente.
//
// Amount se almacena y se compara SIEMPRE en centavos (unidad menor de la
// moneda); la conversión a unidades mayores ocurre solo en la frontera de
// presentación (pkg/money).
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64 // centavos; > 0 al crear
	Status     string
	Date       time.Time // fecha calendario (la hora no es significativa)
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidInvoiceStatus indica si s es un estado de factura reconocido.
func ValidInvoiceStatus(s string) bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}
