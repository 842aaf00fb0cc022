package analytics

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// RevenueUseCase lectura del dataset de ingresos mensuales para el gráfico.
type RevenueUseCase struct {
	repo repository.RevenueRepository
}

// NewRevenueUseCase construye el caso de uso.
func NewRevenueUseCase(repo repository.RevenueRepository) *RevenueUseCase {
	return &RevenueUseCase{repo: repo}
}

// List todos los registros de ingreso mensual, en centavos.
func (uc *RevenueUseCase) List(ctx context.Context) ([]dto.RevenueDTO, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RevenueDTO, 0, len(list))
	for _, r := range list {
		out = append(out, dto.RevenueDTO{Month: r.Month, Revenue: r.Revenue})
	}
	return out, nil
}
