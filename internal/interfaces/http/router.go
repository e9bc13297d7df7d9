// Package http expone el API REST del dashboard sobre Fiber.
package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/rs/zerolog"

	"github.com/jhoicas/leadgen-api/internal/application/analytics"
	"github.com/jhoicas/leadgen-api/internal/application/auth"
	"github.com/jhoicas/leadgen-api/internal/application/leads"
	"github.com/jhoicas/leadgen-api/internal/application/report"
)

// RouterDeps dependencias del router.
type RouterDeps struct {
	AuthUC   *auth.AuthUseCase
	LeadUC   *leads.LeadUseCase
	StatsUC  *analytics.StatsUseCase
	ReportUC *report.ReportUseCase
	Store    *session.Store
	Log      zerolog.Logger
}

// SetupRoutes registra todas las rutas del API.
//
// Rutas públicas: health, login, logout, auth/status y el setup inicial.
// auth/status es público a propósito: responde 200 con authenticated=false
// en vez de 401, porque el front lo consulta antes de saber si hay sesión.
// El resto va detrás del middleware de autenticación.
func SetupRoutes(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.Store, deps.Log)
	leadHandler := NewLeadHandler(deps.LeadUC, deps.ReportUC, deps.Log)
	dashboardHandler := NewDashboardHandler(deps.LeadUC, deps.StatsUC)

	api := app.Group("/api")

	api.Get("/health", authHandler.Health)
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authHandler.Logout)
	api.Get("/auth/status", authHandler.Status)
	api.Post("/setup/admin", authHandler.SetupAdmin)

	protected := api.Group("", AuthMiddleware(deps.Store, deps.AuthUC))
	protected.Get("/protected", authHandler.Protected)

	leadsGroup := protected.Group("/leads")
	leadsGroup.Get("/", leadHandler.List)
	leadsGroup.Get("/refresh", leadHandler.Refresh)
	leadsGroup.Get("/report", leadHandler.Report)
	leadsGroup.Put("/:id/status", leadHandler.UpdateStatus)

	protected.Get("/dashboard/stats", dashboardHandler.Stats)
}
