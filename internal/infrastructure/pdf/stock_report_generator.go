// Package pdf implementa la generación del reporte de stock en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: totales por estado + valorización                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Stock | Reorden | Déficit | Precio  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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

	appinventory "github.com/vetcarepro/vetstock-api/internal/application/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// StockReportGenerator implementa inventory.StockReportPDFGenerator usando Maroto v2.
type StockReportGenerator struct{}

// NewStockReportGenerator construye el generador.
func NewStockReportGenerator() *StockReportGenerator { return &StockReportGenerator{} }

// GenerateStockReport genera el PDF del reporte y devuelve sus bytes.
func (g *StockReportGenerator) GenerateStockReport(_ context.Context, data *appinventory.StockReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Stock", true).
		Build()

	m := maroto.New(cfg)

	// Header
	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Resumen por estado
	m.AddRows(summaryRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de productos bajo punto de reorden
	m.AddRows(tableTitleRow(len(data.Lines)))
	if len(data.Lines) > 0 {
		m.AddRows(tableHeaderRow())
		for _, r := range tableLineRows(data.Lines) {
			m.AddRows(r)
		}
	} else {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Ningún producto está en o bajo su punto de reorden.", props.Text{
				Size: 9, Color: colorGray, Top: 2,
			}),
		)))
	}

	// Footer
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(data *appinventory.StockReportData) core.Row {
	fecha := data.GeneratedAt.Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(7).Add(
			text.New("REPORTE DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Inventario y alertas de reposición", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// summaryRow: conteos por estado y valorización a precio de venta.
func summaryRow(data *appinventory.StockReportData) core.Row {
	s := data.Summary
	cell := func(label string, value string, c *props.Color) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Color: c, Top: 5}),
		)
	}
	return row.New(14).Add(
		cell("Productos", strconv.Itoa(s.Total), colorPrimary),
		cell("En stock", strconv.Itoa(s.InStock), colorPrimary),
		cell("Stock bajo", strconv.Itoa(s.LowStock), colorAlert),
		cell("Agotados", strconv.Itoa(s.OutOfStock), colorAlert),
		cell("Descontinuados", strconv.Itoa(s.Discontinued), colorGray),
		col.New(2).Add(
			text.New("Valorización", props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New("$"+formatMoney(s.TotalRetailValue.StringFixed(0)), props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 5,
			}),
		),
	)
}

// tableTitleRow: título de la sección de alertas.
func tableTitleRow(count int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("PRODUCTOS EN O BAJO PUNTO DE REORDEN (%d)", count), props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

// tableHeaderRow: cabecera de la tabla de alertas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Stock", 1, align.Right),
		h("Reorden", 2, align.Right),
		h("Déficit", 1, align.Right),
		h("Precio", 2, align.Right),
	)
}

// tableLineRows: una fila por producto bajo reorden, mayor déficit primero.
func tableLineRows(lines []appinventory.StockReportLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		deficit := l.ReorderPoint - l.CurrentStock
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(l.SKU, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(l.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(strconv.Itoa(l.CurrentStock), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New(strconv.Itoa(l.ReorderPoint), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(1).Add(text.New(strconv.Itoa(deficit), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorAlert,
			})),
			col.New(2).Add(text.New("$"+formatMoney(l.Price.StringFixed(0)), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// footerRow: leyenda.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Reporte generado automáticamente a partir del libro de movimientos de inventario. "+
				"Los valores se calculan a precio de venta vigente.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
