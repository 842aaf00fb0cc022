// Package export construye la exportación XML del listado de facturas.
package export

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
	"github.com/jhoicas/Finanzas-api/pkg/money"
)

// XMLInvoiceExporter implementa billing.InvoiceXMLExporter usando etree.
type XMLInvoiceExporter struct{}

// NewXMLInvoiceExporter construye el exportador.
func NewXMLInvoiceExporter() *XMLInvoiceExporter {
	return &XMLInvoiceExporter{}
}

// Build serializa las filas como un documento XML indentado. El monto se
// emite formateado para lectura y, como atributo, en centavos exactos.
func (e *XMLInvoiceExporter) Build(rows []repository.InvoiceWithCustomer) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("invoices")
	root.CreateAttr("count", strconv.Itoa(len(rows)))

	for _, r := range rows {
		inv := root.CreateElement("invoice")
		inv.CreateAttr("id", r.ID)

		inv.CreateElement("customer").SetText(r.CustomerName)
		inv.CreateElement("email").SetText(r.CustomerEmail)

		amount := inv.CreateElement("amount")
		amount.CreateAttr("cents", strconv.FormatInt(r.Amount, 10))
		amount.SetText(money.FormatCents(r.Amount))

		inv.CreateElement("date").SetText(r.Date.Format("2006-01-02"))
		inv.CreateElement("status").SetText(r.Status)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("export: serializar xml: %w", err)
	}
	return out, nil
}
