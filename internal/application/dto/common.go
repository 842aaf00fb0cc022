package dto

// ErrorResponse cuerpo de error HTTP. Fields trae el detalle por campo en
// errores de validación, para que la UI marque la entrada ofensiva; en la
// falla genérica de credenciales nunca se incluye.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}
