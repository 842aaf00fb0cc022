package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Finanzas-api/internal/application/billing"
	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// fakeInvoiceRepo repositorio en memoria que registra los parámetros de
// paginación recibidos, para verificar el cálculo de offset/limit.
type fakeInvoiceRepo struct {
	rows      []repository.InvoiceWithCustomer
	byID      map[string]*entity.Invoice
	count     int64
	err       error
	gotLimit  int
	gotOffset int
	created   *entity.Invoice
	updated   *entity.Invoice
	deleted   []string
}

func (f *fakeInvoiceRepo) ListFiltered(_ context.Context, _ string, limit, offset int) ([]repository.InvoiceWithCustomer, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.gotLimit, f.gotOffset = limit, offset
	start := offset
	if start > len(f.rows) {
		return nil, nil
	}
	end := start + limit
	if end > len(f.rows) {
		end = len(f.rows)
	}
	return f.rows[start:end], nil
}

func (f *fakeInvoiceRepo) ListAllFiltered(_ context.Context, _ string) ([]repository.InvoiceWithCustomer, error) {
	return f.rows, f.err
}

func (f *fakeInvoiceRepo) CountFiltered(_ context.Context, _ string) (int64, error) {
	return f.count, f.err
}

func (f *fakeInvoiceRepo) Latest(_ context.Context, n int) ([]repository.InvoiceWithCustomer, error) {
	if n > len(f.rows) {
		n = len(f.rows)
	}
	return f.rows[:n], f.err
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	f.created = inv
	return f.err
}

func (f *fakeInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	f.updated = inv
	return f.err
}

func (f *fakeInvoiceRepo) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func invoiceRow(id string, amount int64, date string) repository.InvoiceWithCustomer {
	d, _ := time.Parse("2006-01-02", date)
	return repository.InvoiceWithCustomer{
		ID: id, Amount: amount, Date: d, Status: entity.InvoiceStatusPending,
		CustomerName: "Delba de Oliveira", CustomerEmail: "delba@oliveira.com",
	}
}

func newInvoiceUC(repo *fakeInvoiceRepo) *billing.InvoiceUseCase {
	return billing.NewInvoiceUseCase(repo, nil)
}

func TestListFiltered_PaginaInvalida(t *testing.T) {
	uc := newInvoiceUC(&fakeInvoiceRepo{})
	for _, page := range []int{0, -1, -100} {
		_, err := uc.ListFiltered(context.Background(), "", page)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve, "page=%d", page)
		assert.Contains(t, ve.Fields, "page")
	}
}

func TestListFiltered_LimiteYOffset(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	uc := newInvoiceUC(repo)

	_, err := uc.ListFiltered(context.Background(), "delba", 3)
	require.NoError(t, err)
	assert.Equal(t, billing.PageSize, repo.gotLimit, "el límite siempre es el tamaño de página")
	assert.Equal(t, 2*billing.PageSize, repo.gotOffset, "offset = (page-1) * tamaño de página")
}

// Una página más allá de la última devuelve lista vacía, no un error.
func TestListFiltered_PaginaMasAllaDeLaUltima(t *testing.T) {
	repo := &fakeInvoiceRepo{rows: []repository.InvoiceWithCustomer{
		invoiceRow("a", 15795, "2022-12-06"),
	}}
	uc := newInvoiceUC(repo)

	out, err := uc.ListFiltered(context.Background(), "", 99)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestListFiltered_DevuelveComoMaximoUnaPagina(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	for i := 0; i < 10; i++ {
		repo.rows = append(repo.rows, invoiceRow("inv", 1000, "2023-06-01"))
	}
	uc := newInvoiceUC(repo)

	out, err := uc.ListFiltered(context.Background(), "", 1)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), billing.PageSize)
}

func TestCountPages_Techo(t *testing.T) {
	cases := []struct {
		total int64
		want  int
	}{
		{0, 0},
		{1, 1},
		{6, 1},
		{7, 2},
		{12, 2},
		{13, 3},
	}
	for _, tc := range cases {
		uc := newInvoiceUC(&fakeInvoiceRepo{count: tc.total})
		got, err := uc.CountPages(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "total=%d", tc.total)
	}
}

// GetByID es la única operación que devuelve el monto en unidades mayores.
func TestGetByID_MontoEnUnidadesMayores(t *testing.T) {
	repo := &fakeInvoiceRepo{byID: map[string]*entity.Invoice{
		"inv-1": {ID: "inv-1", CustomerID: "c-1", Amount: 15795, Status: entity.InvoiceStatusPending},
	}}
	uc := newInvoiceUC(repo)

	out, err := uc.GetByID(context.Background(), "inv-1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, decimal.NewFromFloat(157.95).Equal(out.Amount),
		"15795 centavos deben salir como 157.95")
}

// Un ID desconocido es "no encontrada", no una falla.
func TestGetByID_NoEncontrada(t *testing.T) {
	uc := newInvoiceUC(&fakeInvoiceRepo{byID: map[string]*entity.Invoice{}})

	out, err := uc.GetByID(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestCreate_GuardaEnCentavos(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	uc := newInvoiceUC(repo)

	out, err := uc.Create(context.Background(), dto.SaveInvoiceRequest{
		CustomerID: "c-1",
		Amount:     decimal.NewFromFloat(157.95),
		Status:     entity.InvoiceStatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15795), out.Amount)
	require.NotNil(t, repo.created)
	assert.Equal(t, int64(15795), repo.created.Amount)
	assert.NotEmpty(t, repo.created.ID)
}

func TestCreate_ValidacionPorCampo(t *testing.T) {
	uc := newInvoiceUC(&fakeInvoiceRepo{})

	_, err := uc.Create(context.Background(), dto.SaveInvoiceRequest{
		CustomerID: "",
		Amount:     decimal.Zero,
		Status:     "cancelled",
	})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "customer_id")
	assert.Contains(t, ve.Fields, "amount")
	assert.Contains(t, ve.Fields, "status")
}

func TestUpdate_NoEncontrada(t *testing.T) {
	uc := newInvoiceUC(&fakeInvoiceRepo{byID: map[string]*entity.Invoice{}})

	_, err := uc.Update(context.Background(), "no-existe", dto.SaveInvoiceRequest{
		CustomerID: "c-1",
		Amount:     decimal.NewFromInt(10),
		Status:     entity.InvoiceStatusPaid,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El borrado propaga el fallo del store: no se registra y continúa.
func TestDelete_PropagaErrorDelStore(t *testing.T) {
	repo := &fakeInvoiceRepo{err: assert.AnError}
	uc := newInvoiceUC(repo)

	err := uc.Delete(context.Background(), "inv-1")
	assert.ErrorIs(t, err, assert.AnError)
}
