package dto

import "github.com/jhoicas/leadgen-api/internal/domain/entity"

// LeadResponse un lead normalizado, con los nombres de campo snake_case que
// ya consumía el front original.
type LeadResponse struct {
	ID             int    `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	LinkedInURL    string `json:"linkedin_url"`
	Title          string `json:"title"`
	Email          string `json:"email"`
	CompanyName    string `json:"company_name"`
	CompanyWebsite string `json:"company_website"`
	Icebreaker     string `json:"multiline_icebreaker"`
	Sent           bool   `json:"sent"`
	FollowUp       bool   `json:"follow_up"`
	CreatedAt      string `json:"created_at"`
	Industry       string `json:"industry"`
	Status         string `json:"status"`
}

// LeadsResponse colección de leads más el origen de los datos. Cuando la hoja
// no estuvo disponible y se sirvió el fixture, Warning lo dice explícitamente.
type LeadsResponse struct {
	Leads   []LeadResponse `json:"leads"`
	Source  string         `json:"source"` // "sheets" | "fixture"
	Warning string         `json:"warning,omitempty"`
}

// UpdateStatusRequest entrada de PUT /api/leads/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatusResponse salida de la actualización de estado.
// Result: Applied | AppliedWithPendingSync | Rejected.
type UpdateStatusResponse struct {
	Success bool         `json:"success"`
	Result  string       `json:"result"`
	Lead    LeadResponse `json:"lead"`
}

// DashboardStatsDTO estadísticas derivadas de la colección de leads, con las
// claves camelCase del contrato original.
type DashboardStatsDTO struct {
	TotalLeads        int            `json:"totalLeads"`
	EmailsSent        int            `json:"emailsSent"`
	FollowUpsNeeded   int            `json:"followUpsNeeded"`
	ConversionRate    int            `json:"conversionRate"`
	ResponseRate      int            `json:"responseRate"`
	IndustryBreakdown map[string]int `json:"industryBreakdown"`
	StatusBreakdown   map[string]int `json:"statusBreakdown"`
}

// ToLeadResponse convierte la entidad al DTO de salida.
func ToLeadResponse(l entity.Lead) LeadResponse {
	return LeadResponse{
		ID:             l.ID,
		FirstName:      l.FirstName,
		LastName:       l.LastName,
		LinkedInURL:    l.LinkedInURL,
		Title:          l.Title,
		Email:          l.Email,
		CompanyName:    l.CompanyName,
		CompanyWebsite: l.CompanyWebsite,
		Icebreaker:     l.Icebreaker,
		Sent:           l.Sent,
		FollowUp:       l.FollowUp,
		CreatedAt:      l.CreatedAt,
		Industry:       l.Industry,
		Status:         l.Status,
	}
}

// ToLeadResponses convierte la colección completa.
func ToLeadResponses(leads []entity.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, ToLeadResponse(l))
	}
	return out
}
