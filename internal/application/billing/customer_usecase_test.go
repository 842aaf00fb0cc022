package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Finanzas-api/internal/application/billing"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

type fakeCustomerRepo struct {
	names  []repository.CustomerName
	totals []repository.CustomerWithTotals
	err    error
}

func (f *fakeCustomerRepo) Create(context.Context, *entity.Customer) error { return f.err }

func (f *fakeCustomerRepo) GetByID(context.Context, string) (*entity.Customer, error) {
	return nil, f.err
}

func (f *fakeCustomerRepo) ListNames(context.Context) ([]repository.CustomerName, error) {
	return f.names, f.err
}

func (f *fakeCustomerRepo) ListFilteredWithTotals(context.Context, string) ([]repository.CustomerWithTotals, error) {
	return f.totals, f.err
}

func TestListFiltered_TotalesFormateados(t *testing.T) {
	repo := &fakeCustomerRepo{totals: []repository.CustomerWithTotals{
		{
			ID: "c-1", Name: "Delba de Oliveira", Email: "delba@oliveira.com",
			TotalInvoices: 2, TotalPending: 15795, TotalPaid: 3040,
		},
	}}
	uc := billing.NewCustomerUseCase(repo)

	out, err := uc.ListFiltered(context.Background(), "delba")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(2), out[0].TotalInvoices)
	assert.Equal(t, "$157.95", out[0].TotalPending)
	assert.Equal(t, "$30.40", out[0].TotalPaid)
}

// Un cliente sin facturas aparece en la tabla con totales en cero, no ausente.
func TestListFiltered_ClienteSinFacturas(t *testing.T) {
	repo := &fakeCustomerRepo{totals: []repository.CustomerWithTotals{
		{ID: "c-2", Name: "Evil Rabbit", Email: "evil@rabbit.com"},
	}}
	uc := billing.NewCustomerUseCase(repo)

	out, err := uc.ListFiltered(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(0), out[0].TotalInvoices)
	assert.Equal(t, "$0.00", out[0].TotalPending)
	assert.Equal(t, "$0.00", out[0].TotalPaid)
}

func TestListNames(t *testing.T) {
	repo := &fakeCustomerRepo{names: []repository.CustomerName{
		{ID: "c-1", Name: "Amy Burns"},
		{ID: "c-2", Name: "Balazs Orban"},
	}}
	uc := billing.NewCustomerUseCase(repo)

	out, err := uc.ListNames(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Amy Burns", out[0].Name)
}

func TestListNames_ErrorDelStore(t *testing.T) {
	uc := billing.NewCustomerUseCase(&fakeCustomerRepo{err: assert.AnError})

	_, err := uc.ListNames(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
