package postgres_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Finanzas-api/internal/infrastructure/postgres"
)

// noStoreQuerier registra si alguna consulta llegó al store.
type noStoreQuerier struct {
	touched bool
}

func (q *noStoreQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	q.touched = true
	return pgconn.CommandTag{}, nil
}

func (q *noStoreQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	q.touched = true
	return nil, pgx.ErrNoRows
}

func (q *noStoreQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	q.touched = true
	return nil
}

// Un id que no es UUID no puede existir en la columna uuid: se resuelve como
// "no encontrada" sin consultar el store (atarlo como parámetro produciría
// un error de sintaxis del servidor, no una factura ausente).
func TestGetByID_IDNoUUID_EsNoEncontrada(t *testing.T) {
	q := &noStoreQuerier{}
	repo := postgres.NewInvoiceRepository(q)

	for _, id := range []string{"abc", "", "123", "no-es-un-uuid"} {
		inv, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err, "id=%q", id)
		assert.Nil(t, inv, "id=%q", id)
	}
	assert.False(t, q.touched, "un id malformado nunca viaja al store")
}

func TestDelete_IDNoUUID_NoConsultaElStore(t *testing.T) {
	q := &noStoreQuerier{}
	repo := postgres.NewInvoiceRepository(q)

	err := repo.Delete(context.Background(), "no-es-un-uuid")
	require.NoError(t, err)
	assert.False(t, q.touched)
}
