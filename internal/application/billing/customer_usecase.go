package billing

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
	"github.com/jhoicas/Finanzas-api/pkg/money"
)

// CustomerUseCase lecturas de clientes para selección y para la tabla con
// totales agregados.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// ListNames todos los clientes como (id, name), orden alfabético. Para
// selección en formularios, no para display.
func (uc *CustomerUseCase) ListNames(ctx context.Context) ([]dto.CustomerNameDTO, error) {
	list, err := uc.repo.ListNames(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerNameDTO, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CustomerNameDTO{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// ListFiltered tabla de clientes que emparejan search por nombre o email,
// con conteo de facturas y sumas por estado ya formateadas a moneda. Los
// clientes sin facturas aparecen con "$0.00" (las sumas se derivan en
// lectura, nunca se cachean en el esquema).
func (uc *CustomerUseCase) ListFiltered(ctx context.Context, search string) ([]dto.CustomerTableDTO, error) {
	list, err := uc.repo.ListFilteredWithTotals(ctx, search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerTableDTO, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CustomerTableDTO{
			ID:            c.ID,
			Name:          c.Name,
			Email:         c.Email,
			ImageURL:      c.ImageURL,
			TotalInvoices: c.TotalInvoices,
			TotalPending:  money.FormatCents(c.TotalPending),
			TotalPaid:     money.FormatCents(c.TotalPaid),
		})
	}
	return out, nil
}
