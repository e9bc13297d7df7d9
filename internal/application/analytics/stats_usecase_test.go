package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/leadgen-api/internal/application/analytics"
	"github.com/jhoicas/leadgen-api/internal/domain/entity"
)

func lead(sent, followUp bool, industry, status string) entity.Lead {
	return entity.Lead{Sent: sent, FollowUp: followUp, Industry: industry, Status: status}
}

// Colección vacía → todo en cero, breakdowns vacíos, sin división por cero.
func TestCompute_ColeccionVacia(t *testing.T) {
	uc := analytics.NewStatsUseCase()

	stats := uc.Compute(nil)

	assert.Equal(t, 0, stats.TotalLeads)
	assert.Equal(t, 0, stats.EmailsSent)
	assert.Equal(t, 0, stats.FollowUpsNeeded)
	assert.Equal(t, 0, stats.ConversionRate)
	assert.Equal(t, 0, stats.ResponseRate)
	assert.Empty(t, stats.IndustryBreakdown)
	assert.Empty(t, stats.StatusBreakdown)
}

// 10 leads, 4 enviados, 1 follow-up:
// conversionRate = round(4/10*100) = 40, responseRate = round(3/4*100) = 75.
func TestCompute_TasasConRedondeo(t *testing.T) {
	uc := analytics.NewStatsUseCase()

	var items []entity.Lead
	for i := 0; i < 10; i++ {
		items = append(items, lead(i < 4, i == 0, "Technology", entity.StatusNotContacted))
	}

	stats := uc.Compute(items)

	assert.Equal(t, 10, stats.TotalLeads)
	assert.Equal(t, 4, stats.EmailsSent)
	assert.Equal(t, 1, stats.FollowUpsNeeded)
	assert.Equal(t, 40, stats.ConversionRate)
	assert.Equal(t, 75, stats.ResponseRate)
}

// 3 leads, 1 enviado: round(1/3*100) = 33.
func TestCompute_RedondeoNoTrunca(t *testing.T) {
	uc := analytics.NewStatsUseCase()

	stats := uc.Compute([]entity.Lead{
		lead(true, false, "", ""),
		lead(false, false, "", ""),
		lead(false, false, "", ""),
	})

	assert.Equal(t, 33, stats.ConversionRate)
	// round(2/3*100) = 67 con redondeo, no 66 por truncamiento.
	stats = uc.Compute([]entity.Lead{
		lead(true, false, "", ""),
		lead(true, false, "", ""),
		lead(false, false, "", ""),
	})
	assert.Equal(t, 67, stats.ConversionRate)
}

// Sin emails enviados la tasa de respuesta es 0, nunca división por cero.
func TestCompute_SinEnviadosResponseRateCero(t *testing.T) {
	uc := analytics.NewStatsUseCase()

	stats := uc.Compute([]entity.Lead{
		lead(false, true, "Finance", entity.StatusContacted),
		lead(false, false, "Finance", entity.StatusContacted),
	})

	assert.Equal(t, 0, stats.EmailsSent)
	assert.Equal(t, 0, stats.ResponseRate)
}

// Breakdowns: cada lead cuenta exactamente una vez; industria vacía es
// "Unknown" y estado vacío es "Not Contacted".
func TestCompute_BreakdownsConDefaults(t *testing.T) {
	uc := analytics.NewStatsUseCase()

	stats := uc.Compute([]entity.Lead{
		lead(false, false, "Technology", entity.StatusContacted),
		lead(false, false, "Technology", entity.StatusReplied),
		lead(false, false, "", ""),
	})

	assert.Equal(t, map[string]int{"Technology": 2, "Unknown": 1}, stats.IndustryBreakdown)
	assert.Equal(t, map[string]int{
		entity.StatusContacted:    1,
		entity.StatusReplied:      1,
		entity.StatusNotContacted: 1,
	}, stats.StatusBreakdown)

	total := 0
	for _, n := range stats.IndustryBreakdown {
		total += n
	}
	assert.Equal(t, stats.TotalLeads, total)
}

// El resultado no depende del orden de la colección.
func TestCompute_IndependienteDelOrden(t *testing.T) {
	uc := analytics.NewStatsUseCase()

	a := []entity.Lead{
		lead(true, false, "Technology", entity.StatusContacted),
		lead(false, true, "Finance", entity.StatusReplied),
		lead(true, true, "Retail", entity.StatusClosed),
	}
	b := []entity.Lead{a[2], a[0], a[1]}

	assert.Equal(t, uc.Compute(a), uc.Compute(b))
}
