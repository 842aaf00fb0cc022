// Package analytics contiene los casos de uso de lectura agregada del panel
// financiero: el resumen de tarjetas y el dataset de ingresos mensuales.
package analytics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
	"github.com/jhoicas/Finanzas-api/pkg/money"
)

// DashboardUseCase produce el resumen del panel a partir de tres consultas
// agregadas independientes.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetSummary ejecuta las tres consultas en paralelo y combina el resultado.
//
// Las consultas no dependen entre sí (ningún resultado alimenta a otra),
// por eso pueden correr concurrentes sin restricción de orden; el paralelismo
// es por latencia, no por corrección. Si cualquiera falla, falla toda la
// operación: nunca se devuelve un resumen parcial.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	var (
		invoiceCount  int64
		customerCount int64
		totals        repository.StatusTotals
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoiceCount, err = uc.repo.CountInvoices(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		customerCount, err = uc.repo.CountCustomers(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = uc.repo.SumInvoicesByStatus(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	return &dto.DashboardSummaryDTO{
		NumberOfInvoices:  invoiceCount,
		NumberOfCustomers: customerCount,
		TotalPaid:         money.FormatCents(totals.Paid),
		TotalPending:      money.FormatCents(totals.Pending),
	}, nil
}
