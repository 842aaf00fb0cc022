// Package pdf implementa la generación del comprobante PDF de una factura.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Finanzas  │  N° Factura + Fecha de emisión          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Email                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Estado | Fecha | MONTO                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de comprobante                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 22, Green: 128, Blue: 57}
	colorAmber   = &props.Color{Red: 176, Green: 124, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	appName string
}

// NewMarotoPDFGenerator construye el generador. appName encabeza el comprobante.
func NewMarotoPDFGenerator(appName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{appName: appName}
}

// Generate genera el comprobante y devuelve sus bytes.
func (g *MarotoPDFGenerator) Generate(
	_ context.Context,
	invoice *entity.Invoice,
	customer *entity.Customer,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de factura", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(detailRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la app (izq) y N° de factura + fecha (der).
func (g *MarotoPDFGenerator) headerRow(invoice *entity.Invoice) core.Row {
	fecha := invoice.Date.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprobante de factura", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(invoice.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente facturado.
func customerRow(customer *entity.Customer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Email: "+customer.Email, props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// detailRow: estado y monto total. El monto se guarda en centavos y se
// formatea a moneda de display solo aquí.
func detailRow(invoice *entity.Invoice) core.Row {
	statusColor := colorAmber
	statusLabel := "PENDIENTE DE PAGO"
	if invoice.Status == entity.InvoiceStatusPaid {
		statusColor = colorGreen
		statusLabel = "PAGADA"
	}

	return row.New(24).Add(
		col.New(6).Add(
			text.New("Estado:", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2,
			}),
			text.New(statusLabel, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 8, Color: statusColor,
			}),
		),
		col.New(6).Add(
			text.New("TOTAL", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 2, Right: 1,
			}),
			text.New(money.FormatCents(invoice.Amount), props.Text{
				Style: fontstyle.Bold, Size: 15, Align: align.Right,
				Color: colorPrimary, Top: 9, Right: 1,
			}),
		),
	)
}

// footerRow: leyenda del comprobante.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Este documento es un comprobante informativo de la factura registrada "+
				"en el sistema. Conserve este documento como soporte.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// shortID primer segmento del UUID, suficiente como referencia visible.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return strings.ToUpper(id[:i])
	}
	return id
}
