// Package analytics deriva las estadísticas del dashboard a partir de la
// colección de leads normalizada.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/leadgen-api/internal/application/dto"
	"github.com/jhoicas/leadgen-api/internal/domain/entity"
)

// StatsUseCase calcula DashboardStats. Es puro y total: misma colección,
// mismo resultado, independiente del orden de los leads.
type StatsUseCase struct{}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase() *StatsUseCase { return &StatsUseCase{} }

var hundred = decimal.NewFromInt(100)

// Compute deriva las métricas del dashboard:
//
//	conversionRate = round(emailsSent / totalLeads * 100)   (0 si no hay leads)
//	responseRate   = round((emailsSent - followUps) / emailsSent * 100) (0 si no hay enviados)
//
// Ambas divisiones están protegidas contra denominador cero, siempre.
// Los breakdowns cuentan cada lead exactamente una vez; industria vacía
// cuenta como "Unknown" y estado vacío como "Not Contacted".
func (uc *StatsUseCase) Compute(leads []entity.Lead) dto.DashboardStatsDTO {
	total := len(leads)
	sent := 0
	followUps := 0
	industries := make(map[string]int)
	statuses := make(map[string]int)

	for _, l := range leads {
		if l.Sent {
			sent++
		}
		if l.FollowUp {
			followUps++
		}
		industry := l.Industry
		if industry == "" {
			industry = "Unknown"
		}
		industries[industry]++

		status := l.Status
		if status == "" {
			status = entity.StatusNotContacted
		}
		statuses[status]++
	}

	return dto.DashboardStatsDTO{
		TotalLeads:        total,
		EmailsSent:        sent,
		FollowUpsNeeded:   followUps,
		ConversionRate:    roundedRate(sent, total),
		ResponseRate:      roundedRate(sent-followUps, sent),
		IndustryBreakdown: industries,
		StatusBreakdown:   statuses,
	}
}

// roundedRate devuelve round(num/den*100) como entero, 0 si den es cero.
func roundedRate(num, den int) int {
	if den == 0 {
		return 0
	}
	return int(decimal.NewFromInt(int64(num)).
		Div(decimal.NewFromInt(int64(den))).
		Mul(hundred).
		Round(0).
		IntPart())
}
