package auth

import (
	"context"
	"net/mail"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
	"github.com/jhoicas/Finanzas-api/pkg/jwt"
)

// minPasswordLen longitud mínima exigida antes de consultar el store.
const minPasswordLen = 6

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase autenticación de credenciales contra el hash almacenado.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password y genera el JWT.
//
// La precondición de entrada (email sintácticamente válido, password de al
// menos 6 caracteres) se reporta como ValidationError con detalle por campo:
// es un error del llamador, no una falla de credenciales. Superada la
// validación, tanto "email desconocido" como "password incorrecto" devuelven
// el mismo ErrInvalidCredentials: la señal no distingue cuál factor falló.
// La comparación del hash la hace bcrypt (tiempo constante); el password en
// plano nunca se registra ni se persiste.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := validateCredentials(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

func validateCredentials(in dto.LoginRequest) error {
	fields := map[string]string{}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		fields["email"] = "email inválido"
	}
	if len(in.Password) < minPasswordLen {
		fields["password"] = "password debe tener al menos 6 caracteres"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
