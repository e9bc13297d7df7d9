// Package pdf genera el reporte del dashboard con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: LeadGen Dashboard  │  Fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Total | Enviados | Follow-ups | Conversión | Resp.   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nombre | Título | Empresa | Industria | Estado      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/jhoicas/leadgen-api/internal/application/dto"
	"github.com/jhoicas/leadgen-api/internal/application/report"
	"github.com/jhoicas/leadgen-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 175}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.LeadReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.LeadReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateLeadReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateLeadReport(
	_ context.Context,
	stats dto.DashboardStatsDTO,
	items []entity.Lead,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Leads", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(stats))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(len(items)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte (izq) y fecha de generación (der).
func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("LeadGen Dashboard — Reporte de Leads", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	)
}

// kpiRow: los cinco indicadores del dashboard en una sola fila.
func kpiRow(stats dto.DashboardStatsDTO) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Top: 6, Align: align.Center}),
		)
	}
	return row.New(16).Add(
		col.New(1),
		kpi("Total leads", fmt.Sprintf("%d", stats.TotalLeads)),
		kpi("Emails enviados", fmt.Sprintf("%d", stats.EmailsSent)),
		kpi("Follow-ups", fmt.Sprintf("%d", stats.FollowUpsNeeded)),
		kpi("Conversión", fmt.Sprintf("%d%%", stats.ConversionRate)),
		kpi("Respuesta", fmt.Sprintf("%d%%", stats.ResponseRate)),
		col.New(1),
	)
}

// tableHeaderRow: cabecera de la tabla de leads.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Nombre", 3, align.Left),
		h("Título", 2, align.Left),
		h("Empresa", 3, align.Left),
		h("Industria", 2, align.Left),
		h("Estado", 2, align.Left),
	)
}

// tableRows: una fila por lead.
func tableRows(items []entity.Lead) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, l := range items {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(
				fmt.Sprintf("%s %s", l.FirstName, l.LastName),
				props.Text{Size: 8, Top: 1},
			)),
			col.New(2).Add(text.New(l.Title, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(l.CompanyName, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(l.Industry, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(l.Status, props.Text{Size: 8, Top: 1})),
		))
	}
	return result
}

// footerRow: total de leads incluidos.
func footerRow(total int) core.Row {
	return row.New(6).Add(
		col.New(12).Add(text.New(
			fmt.Sprintf("%d leads incluidos en el reporte.", total),
			props.Text{Size: 8, Color: colorGray},
		)),
	)
}
