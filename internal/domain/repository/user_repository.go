package repository

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para credenciales de usuario.
type UserRepository interface {
	// Create persiste un usuario nuevo (aprovisionamiento).
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail busca por email exacto; la sensibilidad a mayúsculas es la
	// que aplique la collation del store. Devuelve (nil, nil) si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
