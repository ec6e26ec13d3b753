// Package pdf genera el recibo de venta en PDF.
//
// Layout de la página A5:
//
//	┌──────────────────────────────────────────────┐
//	│  Tienda                 │  Recibo N° + Fecha  │
//	│  ──────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | SKU | P.Unit | Total │
//	│  ──────────────────────────────────────────  │
//	│  TOTAL                                        │
//	│  QR (referencia del recibo)                   │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/application/ports"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ports.ReceiptPDFGenerator = (*ReceiptGenerator)(nil)

// ReceiptGenerator implementa ports.ReceiptPDFGenerator con Maroto v2.
type ReceiptGenerator struct{}

// NewReceiptGenerator construye el generador.
func NewReceiptGenerator() *ReceiptGenerator { return &ReceiptGenerator{} }

// GenerateReceiptPDF genera el recibo de una venta y devuelve sus bytes.
func (g *ReceiptGenerator) GenerateReceiptPDF(_ context.Context, storeName string, sale repository.SaleView) ([]byte, error) {
	storeName = nonEmpty(strings.TrimSpace(storeName), "Tienda")
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Recibo %d", sale.InvoiceNo), true).
		WithAuthor(storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(storeName, sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow(), detailRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(sale.Total()))
	m.AddRows(line.NewRow(3))
	m.AddRows(qrRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(storeName string, sale repository.SaleView) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %d", sale.InvoiceNo), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 6,
			}),
			text.New("Fecha: "+sale.SaleTime.Format("02/01/2006 15:04"), props.Text{
				Size: 7, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 4, align.Left),
		h("SKU", 2, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

func detailRow(sale repository.SaleView) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1}))
	}
	return row.New(7).Add(
		cell(fmt.Sprintf("%d", sale.Quantity), 1, align.Center),
		cell(sale.ProductName, 4, align.Left),
		cell(sale.ProductSKU, 2, align.Left),
		cell("$"+formatMoney(sale.UnitPrice), 2, align.Right),
		cell("$"+formatMoney(sale.Total()), 3, align.Right),
	)
}

func totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
		col.New(3).Add(text.New("$"+formatMoney(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
	)
}

func qrRow(sale repository.SaleView) core.Row {
	return row.New(30).Add(
		col.New(4).Add(code.NewQr(receiptReference(sale), props.Rect{Percent: 95, Center: true})),
		col.New(8).Add(text.New("Conserve este recibo como soporte de su compra.", props.Text{
			Size: 7, Top: 10, Left: 3, Color: colorGray,
		})),
	)
}

// receiptReference contenido del QR: número, SKU, unidades y total.
func receiptReference(sale repository.SaleView) string {
	return fmt.Sprintf("REC-%d|%s|%d|%s", sale.InvoiceNo, sale.ProductSKU, sale.Quantity, sale.Total().StringFixed(2))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney dos decimales con separador de miles.
// Ej: 25000 → "25,000.00", 1234.5 → "1,234.50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	if n <= 3 {
		return sign + intPart + "." + frac
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "." + frac
}
