package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Finanzas-api/internal/application/auth"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Finanzas-api/internal/interfaces/http"
	"github.com/jhoicas/Finanzas-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

type fakeUserStore struct {
	users map[string]*entity.User
	err   error
}

func (f *fakeUserStore) Create(_ context.Context, u *entity.User) error {
	f.users[u.Email] = u
	return nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[email], nil
}

func buildLoginApp(t *testing.T) *fiber.App {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)

	store := &fakeUserStore{users: map[string]*entity.User{
		"user@nextmail.com": {
			ID: testUserID, Name: "User", Email: "user@nextmail.com",
			PasswordHash: string(hash),
		},
	}}
	uc := auth.NewAuthUseCase(store, auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})

	app := fiber.New()
	app.Post("/api/auth/login", apphttp.NewAuthHandler(uc, testLogger()).Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestLoginHTTP_Correcto(t *testing.T) {
	app := buildLoginApp(t)
	resp := postLogin(t, app, `{"email":"user@nextmail.com","password":"123456"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body, "token")
	assert.NotContains(t, string(body["user"]), "password",
		"la respuesta nunca incluye el hash del password")
}

// El cuerpo de la falla de credenciales es idéntico para email desconocido y
// para password incorrecto.
func TestLoginHTTP_FallaGenerica(t *testing.T) {
	app := buildLoginApp(t)

	respUnknown := postLogin(t, app, `{"email":"nadie@nextmail.com","password":"123456"}`)
	defer respUnknown.Body.Close()
	respWrong := postLogin(t, app, `{"email":"user@nextmail.com","password":"incorrecta"}`)
	defer respWrong.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, respUnknown.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respWrong.StatusCode)

	var bodyUnknown, bodyWrong map[string]any
	require.NoError(t, json.NewDecoder(respUnknown.Body).Decode(&bodyUnknown))
	require.NoError(t, json.NewDecoder(respWrong.Body).Decode(&bodyWrong))
	assert.Equal(t, bodyUnknown, bodyWrong, "misma respuesta para ambos factores")
}

func TestLoginHTTP_ValidacionConDetallePorCampo(t *testing.T) {
	app := buildLoginApp(t)
	resp := postLogin(t, app, `{"email":"no-es-un-email","password":"123"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Code   string            `json:"code"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Fields, "email")
	assert.Contains(t, body.Fields, "password")
}

// Una falla del store durante el login responde 500 genérico, sin el texto
// del error del driver en el cuerpo.
func TestLoginHTTP_FallaDelStore_NoFiltraDetalles(t *testing.T) {
	store := &fakeUserStore{err: errors.New("dial tcp db-interno.local:5432: connect refused")}
	uc := auth.NewAuthUseCase(store, auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})
	app := fiber.New()
	app.Post("/api/auth/login", apphttp.NewAuthHandler(uc, testLogger()).Login)

	resp := postLogin(t, app, `{"email":"user@nextmail.com","password":"123456"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(body), "db-interno.local")
	assert.Contains(t, string(body), "error interno")
}

func TestLoginHTTP_CuerpoInvalido(t *testing.T) {
	app := buildLoginApp(t)
	resp := postLogin(t, app, `{esto no es json`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
