package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")

	// ErrInvalidCredentials es la falla genérica de autenticación: la misma
	// señal tanto para email desconocido como para password incorrecto, para
	// no revelar cuál de los dos factores falló.
	ErrInvalidCredentials = errors.New("credenciales inválidas")
)

// ValidationError error de entrada del llamador con detalle por campo,
// para que la UI pueda marcar el campo ofensivo.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "entrada inválida" }

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError construye un ValidationError con un solo campo.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
