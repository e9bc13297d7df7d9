package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/leadgen-api/internal/application/dto"
	"github.com/jhoicas/leadgen-api/internal/application/leads"
	"github.com/jhoicas/leadgen-api/internal/application/report"
	"github.com/jhoicas/leadgen-api/internal/domain"
)

// LeadHandler handlers HTTP de la colección de leads.
type LeadHandler struct {
	uc     *leads.LeadUseCase
	report *report.ReportUseCase
	log    zerolog.Logger
}

// NewLeadHandler construye el handler de leads.
func NewLeadHandler(uc *leads.LeadUseCase, reportUC *report.ReportUseCase, log zerolog.Logger) *LeadHandler {
	return &LeadHandler{uc: uc, report: reportUC, log: log}
}

// List devuelve la colección actual (cargándola de la fuente la primera vez).
// @Summary Listar leads
// @Description Colección de leads normalizada; indica el origen y un warning si se sirvió el dataset de ejemplo
// @Tags leads
// @Produce json
// @Success 200 {object} dto.LeadsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/leads [get]
func (h *LeadHandler) List(c *fiber.Ctx) error {
	items, source, warning := h.uc.Leads(c.Context())
	return c.JSON(dto.LeadsResponse{
		Leads:   dto.ToLeadResponses(items),
		Source:  source,
		Warning: warning,
	})
}

// Refresh fuerza una relectura de la fuente y devuelve la colección nueva.
// @Summary Refrescar leads
// @Tags leads
// @Produce json
// @Success 200 {object} dto.LeadsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/leads/refresh [get]
func (h *LeadHandler) Refresh(c *fiber.Ctx) error {
	items, source, warning := h.uc.Refresh(c.Context())
	return c.JSON(dto.LeadsResponse{
		Leads:   dto.ToLeadResponses(items),
		Source:  source,
		Warning: warning,
	})
}

// UpdateStatus cambia el estado de un lead (mutación optimista).
// @Summary Actualizar estado de un lead
// @Tags leads
// @Accept json
// @Produce json
// @Param id path int true "ID del lead"
// @Param request body dto.UpdateStatusRequest true "Nuevo estado"
// @Success 200 {object} dto.UpdateStatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/leads/{id}/status [put]
func (h *LeadHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION_ERROR", Message: "id de lead inválido",
		})
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION_ERROR", Message: "cuerpo de la petición inválido",
		})
	}

	result, lead, err := h.uc.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "INVALID_STATUS", Message: "estado de lead no reconocido",
			})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "NOT_FOUND", Message: "lead no encontrado",
			})
		default:
			h.log.Error().Err(err).Int("lead_id", id).Msg("actualizar estado")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Code: "SYNC_FAILED", Message: "no se pudo sincronizar el cambio de estado",
			})
		}
	}

	return c.JSON(dto.UpdateStatusResponse{
		Success: true,
		Result:  result,
		Lead:    dto.ToLeadResponse(*lead),
	})
}

// Report genera y descarga el reporte PDF del dashboard.
// @Summary Reporte PDF de leads
// @Tags leads
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/leads/report [get]
func (h *LeadHandler) Report(c *fiber.Ctx) error {
	out, err := h.report.GenerateLeadReport(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("generar reporte PDF")
		return internalError(c)
	}

	filename := fmt.Sprintf("leads_%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(out)
}
