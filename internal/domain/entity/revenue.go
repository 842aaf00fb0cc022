package entity

// Revenue ingreso mensual de referencia (dataset append-only, sin join con facturas).
type Revenue struct {
	Month   string // etiqueta corta, única, ej. "Jan"
	Revenue int64  // centavos
}
