// Package pdf implementa la generación del reporte de booking en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + Período                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Usuario | Cliente | Proyecto | Puesto |      │
//	│         Horas | Importe                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Horas totales / Importe total                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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

	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/dto"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Ensure MarotoPDFGenerator implements report.BookingPDFGenerator.
var _ report.BookingPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa report.BookingPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// Generate genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoPDFGenerator) Generate(r *dto.BookingReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Booking", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, l := range r.Lines {
		m.AddRows(lineRow(l))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y período del reporte (der).
func headerRow(r *dto.BookingReportDTO) core.Row {
	periodo := fmt.Sprintf("Período: %s — %s", r.Period.StartDate, r.Period.EndDate)
	return row.New(14).Add(
		col.New(7).Add(
			text.New("REPORTE DE BOOKING", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Detalle de horas imputadas", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(periodo, props.Text{
				Size: 9, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de imputaciones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Usuario", 2, align.Left),
		h("Cliente", 2, align.Left),
		h("Proyecto", 2, align.Left),
		h("Puesto", 2, align.Left),
		h("Horas", 1, align.Right),
		h("Importe", 1, align.Right),
	)
}

// lineRow: una fila por imputación.
func lineRow(l dto.BookingLineDTO) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		cell(l.Date, 2, align.Left),
		cell(l.UserName, 2, align.Left),
		cell(l.ClientName, 2, align.Left),
		cell(l.ProjectName, 2, align.Left),
		cell(l.PositionName, 2, align.Left),
		cell(l.Hours.StringFixed(2), 1, align.Right),
		cell(l.Amount.StringFixed(2), 1, align.Right),
	)
}

// totalsRow: totales del período alineados a la derecha.
func totalsRow(r *dto.BookingReportDTO) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(16).Add(
		col.New(6),
		col.New(3).Add(
			label("Horas totales:"),
			grandLabel("IMPORTE TOTAL:"),
		),
		col.New(3).Add(
			value(r.TotalHours.StringFixed(2)),
			grandValue(r.TotalAmount.StringFixed(2)),
		),
	)
}
