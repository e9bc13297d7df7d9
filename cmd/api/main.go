package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"

	_ "github.com/jhoicas/leadgen-api/docs"
	"github.com/jhoicas/leadgen-api/internal/application/analytics"
	"github.com/jhoicas/leadgen-api/internal/application/auth"
	appleads "github.com/jhoicas/leadgen-api/internal/application/leads"
	"github.com/jhoicas/leadgen-api/internal/application/report"
	"github.com/jhoicas/leadgen-api/internal/domain/repository"
	"github.com/jhoicas/leadgen-api/internal/infrastructure/fixture"
	"github.com/jhoicas/leadgen-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/leadgen-api/internal/infrastructure/pdf"
	"github.com/jhoicas/leadgen-api/internal/infrastructure/postgres"
	infrasheets "github.com/jhoicas/leadgen-api/internal/infrastructure/sheets"
	httpRouter "github.com/jhoicas/leadgen-api/internal/interfaces/http"
	"github.com/jhoicas/leadgen-api/pkg/config"
	"github.com/jhoicas/leadgen-api/pkg/logger"
)

// @title LeadGen Dashboard API
// @version 1.0
// @description API del dashboard de generación de leads: auth, leads desde Google Sheets y estadísticas.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, "info")
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("asegurar esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	tokenStore := memory.NewTokenStore(cfg.Token.TTL())
	authUC := auth.NewAuthUseCase(userRepo, tokenStore)

	// Barrido periódico de tokens vencidos; la expiración lazy del Verify ya
	// los evicta, esto solo acota la memoria entre logins.
	sweeper := time.NewTicker(time.Hour)
	defer sweeper.Stop()
	go func() {
		for range sweeper.C {
			if n := tokenStore.RevokeExpired(); n > 0 {
				log.Debug().Int("revocados", n).Msg("tokens vencidos barridos")
			}
		}
	}()

	// Fuente de leads: solo si Sheets está configurado; si no, la app vive del
	// dataset fixture y lo dice en cada respuesta.
	var leadSource repository.LeadSource
	if cfg.Sheets.APIKey != "" && cfg.Sheets.SpreadsheetID != "" {
		client, err := infrasheets.NewClient(ctx, cfg.Sheets.APIKey, infrasheets.Config{
			SpreadsheetID: cfg.Sheets.SpreadsheetID,
			Candidates:    cfg.Sheets.Candidates,
			ReadRange:     cfg.Sheets.ReadRange,
			Timeout:       cfg.Sheets.Timeout(),
		}, log)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente de Google Sheets")
		}
		leadSource = client
	} else {
		log.Warn().Msg("Sheets sin configurar (SHEETS_API_KEY / SPREADSHEET_ID), se servirá el dataset fixture")
	}

	normalizer := appleads.NewNormalizer(appleads.Policy{
		HeaderRow:       cfg.Leads.HeaderRow,
		DefaultIndustry: cfg.Leads.DefaultIndustry,
	})
	leadUC := appleads.NewLeadUseCase(
		leadSource,
		infrasheets.NewStatusWriterStub(log),
		normalizer,
		fixture.Leads(),
		log,
	)
	statsUC := analytics.NewStatsUseCase()
	reportUC := report.NewReportUseCase(leadUC, statsUC, infrapdf.NewMarotoReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.AllowOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "LeadGen API",
	}))

	store := session.New(session.Config{
		Expiration:     cfg.Session.TTL(),
		KeyLookup:      "cookie:" + cfg.Session.CookieName,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})

	httpRouter.SetupRoutes(app, httpRouter.RouterDeps{
		AuthUC:   authUC,
		LeadUC:   leadUC,
		StatsUC:  statsUC,
		ReportUC: reportUC,
		Store:    store,
		Log:      log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
