// Package report genera el reporte PDF del dashboard (KPIs + tabla de leads).
package report

import (
	"context"
	"fmt"

	"github.com/jhoicas/leadgen-api/internal/application/analytics"
	"github.com/jhoicas/leadgen-api/internal/application/dto"
	"github.com/jhoicas/leadgen-api/internal/application/leads"
	"github.com/jhoicas/leadgen-api/internal/domain/entity"
)

// LeadReportGenerator puerto hacia el motor de PDF.
type LeadReportGenerator interface {
	GenerateLeadReport(ctx context.Context, stats dto.DashboardStatsDTO, items []entity.Lead) ([]byte, error)
}

// ReportUseCase arma el reporte a partir del estado actual de la colección.
type ReportUseCase struct {
	leads *leads.LeadUseCase
	stats *analytics.StatsUseCase
	pdf   LeadReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(leadsUC *leads.LeadUseCase, statsUC *analytics.StatsUseCase, pdf LeadReportGenerator) *ReportUseCase {
	return &ReportUseCase{leads: leadsUC, stats: statsUC, pdf: pdf}
}

// GenerateLeadReport carga la colección si hace falta y produce el PDF.
func (uc *ReportUseCase) GenerateLeadReport(ctx context.Context) ([]byte, error) {
	items, _, _ := uc.leads.Leads(ctx)
	stats := uc.stats.Compute(items)

	out, err := uc.pdf.GenerateLeadReport(ctx, stats, items)
	if err != nil {
		return nil, fmt.Errorf("generar reporte de leads: %w", err)
	}
	return out, nil
}
