package entity

import "time"

// User representa una credencial de acceso al panel financiero.
// Se crea en aprovisionamiento (cmd/seed); solo lo consume el autenticador.
type User struct {
	ID           string
	Name         string
	Email        string // único
	PasswordHash string // hash bcrypt, nunca el password plano después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
