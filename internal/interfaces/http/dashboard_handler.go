package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/leadgen-api/internal/application/analytics"
	"github.com/jhoicas/leadgen-api/internal/application/leads"
)

// DashboardHandler handlers HTTP del dashboard.
type DashboardHandler struct {
	leads *leads.LeadUseCase
	stats *analytics.StatsUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(leadsUC *leads.LeadUseCase, statsUC *analytics.StatsUseCase) *DashboardHandler {
	return &DashboardHandler{leads: leadsUC, stats: statsUC}
}

// Stats estadísticas derivadas de la colección actual. Refleja las
// actualizaciones de estado aplicadas localmente.
// @Summary Estadísticas del dashboard
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardStatsDTO
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	items, _, _ := h.leads.Leads(c.Context())
	return c.JSON(h.stats.Compute(items))
}
