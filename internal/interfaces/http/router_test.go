package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/leadgen-api/internal/application/analytics"
	"github.com/jhoicas/leadgen-api/internal/application/auth"
	"github.com/jhoicas/leadgen-api/internal/application/dto"
	appleads "github.com/jhoicas/leadgen-api/internal/application/leads"
	"github.com/jhoicas/leadgen-api/internal/application/report"
	"github.com/jhoicas/leadgen-api/internal/domain"
	"github.com/jhoicas/leadgen-api/internal/domain/entity"
	"github.com/jhoicas/leadgen-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/leadgen-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

type stubPDF struct{}

func (stubPDF) GenerateLeadReport(context.Context, dto.DashboardStatsDTO, []entity.Lead) ([]byte, error) {
	return []byte("%PDF-1.4 stub"), nil
}

var testFixture = []entity.Lead{
	{ID: 1, FirstName: "Ana", CompanyName: "Acme Clinic", Industry: "Healthcare",
		Sent: true, Status: entity.StatusNotContacted},
	{ID: 2, FirstName: "Luis", CompanyName: "TechCorp", Industry: "Technology",
		FollowUp: true, Status: entity.StatusNotContacted},
}

// buildTestApp monta la app completa con fakes: repositorio de usuarios en
// memoria, sin fuente de Sheets (la colección vive del fixture) y un PDF stub.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()

	authUC := auth.NewAuthUseCase(
		&fakeUserRepo{byEmail: make(map[string]*entity.User)},
		memory.NewTokenStore(time.Hour),
	)
	leadUC := appleads.NewLeadUseCase(
		nil, nil,
		appleads.NewNormalizer(appleads.DefaultPolicy()),
		testFixture,
		zerolog.Nop(),
	)
	statsUC := analytics.NewStatsUseCase()
	reportUC := report.NewReportUseCase(leadUC, statsUC, stubPDF{})

	app := fiber.New()
	store := session.New(session.Config{
		Expiration:     time.Hour,
		KeyLookup:      "cookie:leadgen_session",
		CookieSameSite: "Lax",
	})
	apphttp.SetupRoutes(app, apphttp.RouterDeps{
		AuthUC:   authUC,
		LeadUC:   leadUC,
		StatsUC:  statsUC,
		ReportUC: reportUC,
		Store:    store,
		Log:      zerolog.Nop(),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, mutate ...func(*http.Request)) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, m := range mutate {
		m(req)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// createAdmin registra el admin vía el endpoint de setup.
func createAdmin(t *testing.T, app *fiber.App) {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/setup/admin", map[string]string{
		"email": "admin@leadgen.com", "password": "admin123", "name": "Admin User",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

// login devuelve el bearer token y la cookie de sesión.
func login(t *testing.T, app *fiber.App) (token string, cookie *http.Cookie) {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/login", map[string]string{
		"email": "admin@leadgen.com", "password": "admin123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, c := range resp.Cookies() {
		if c.Name == "leadgen_session" {
			cookie = c
		}
	}
	out := decode[dto.LoginResponse](t, resp)
	require.NotEmpty(t, out.Token)
	require.NotNil(t, cookie, "el login debe establecer la cookie de sesión")
	return out.Token, cookie
}

func withToken(token string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func withCookie(c *http.Cookie) func(*http.Request) {
	return func(r *http.Request) { r.AddCookie(c) }
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EstableceSesionYToken(t *testing.T) {
	app := buildTestApp(t)
	createAdmin(t, app)

	token, cookie := login(t, app)

	assert.NotEmpty(t, token)
	assert.NotEmpty(t, cookie.Value)
}

// Email desconocido y password mala devuelven el mismo 401 con el mismo
// cuerpo: sin enumeración de usuarios.
func TestLogin_CredencialesInvalidasIndistinguibles(t *testing.T) {
	app := buildTestApp(t)
	createAdmin(t, app)

	respUnknown := doJSON(t, app, http.MethodPost, "/api/login", map[string]string{
		"email": "nadie@leadgen.com", "password": "admin123",
	})
	respWrong := doJSON(t, app, http.MethodPost, "/api/login", map[string]string{
		"email": "admin@leadgen.com", "password": "mala",
	})

	assert.Equal(t, http.StatusUnauthorized, respUnknown.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respWrong.StatusCode)
	bodyUnknown := decode[dto.ErrorResponse](t, respUnknown)
	bodyWrong := decode[dto.ErrorResponse](t, respWrong)
	assert.Equal(t, bodyUnknown, bodyWrong)
}

func TestLogin_CamposFaltantes(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/login", map[string]string{"email": "x@y.com"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// auth/status siempre responde 200; authenticated refleja las pruebas.
func TestAuthStatus_Siempre200(t *testing.T) {
	app := buildTestApp(t)
	createAdmin(t, app)
	token, cookie := login(t, app)

	// Sin pruebas de identidad.
	resp := doJSON(t, app, http.MethodGet, "/api/auth/status", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.AuthStatusResponse](t, resp)
	assert.False(t, out.Authenticated)
	assert.Nil(t, out.User)

	// Con cookie de sesión.
	resp = doJSON(t, app, http.MethodGet, "/api/auth/status", nil, withCookie(cookie))
	out = decode[dto.AuthStatusResponse](t, resp)
	require.True(t, out.Authenticated)
	assert.Equal(t, "admin@leadgen.com", out.User.Email)

	// Con bearer token (header).
	resp = doJSON(t, app, http.MethodGet, "/api/auth/status", nil, withToken(token))
	out = decode[dto.AuthStatusResponse](t, resp)
	assert.True(t, out.Authenticated)

	// Con token por query string.
	resp = doJSON(t, app, http.MethodGet, "/api/auth/status?token="+token, nil)
	out = decode[dto.AuthStatusResponse](t, resp)
	assert.True(t, out.Authenticated)

	// Token inventado: 200 igualmente, pero sin identidad.
	resp = doJSON(t, app, http.MethodGet, "/api/auth/status?token=tok_falso", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out = decode[dto.AuthStatusResponse](t, resp)
	assert.False(t, out.Authenticated)
}

// Logout destruye la sesión pero el bearer token sigue vivo hasta expirar.
func TestLogout_NoRevocaElToken(t *testing.T) {
	app := buildTestApp(t)
	createAdmin(t, app)
	token, cookie := login(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/logout", nil, withCookie(cookie))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// La cookie anterior ya no autentica.
	resp = doJSON(t, app, http.MethodGet, "/api/auth/status", nil, withCookie(cookie))
	out := decode[dto.AuthStatusResponse](t, resp)
	assert.False(t, out.Authenticated)

	// El token emitido en el login sigue siendo válido.
	resp = doJSON(t, app, http.MethodGet, "/api/auth/status", nil, withToken(token))
	out = decode[dto.AuthStatusResponse](t, resp)
	assert.True(t, out.Authenticated)
}

func TestProtected_RequiereIdentidad(t *testing.T) {
	app := buildTestApp(t)
	createAdmin(t, app)
	token, _ := login(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/protected", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "UNAUTHORIZED", body.Code)

	resp = doJSON(t, app, http.MethodGet, "/api/protected", nil, withToken(token))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.ProtectedResponse](t, resp)
	assert.Equal(t, "admin@leadgen.com", out.User.Email)
}

func TestSetupAdmin_Duplicado400(t *testing.T) {
	app := buildTestApp(t)
	createAdmin(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/setup/admin", map[string]string{
		"email": "admin@leadgen.com", "password": "otra", "name": "Otro",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "USER_EXISTS", body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Leads y dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestLeads_ListaConOrigenYWarning(t *testing.T) {
	app := buildTestApp(t)
	createAdmin(t, app)
	token, _ := login(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/leads", nil, withToken(token))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.LeadsResponse](t, resp)

	// Sin fuente configurada: fixture con warning explícito.
	assert.Equal(t, "fixture", out.Source)
	assert.NotEmpty(t, out.Warning)
	require.Len(t, out.Leads, 2)
	assert.Equal(t, "Ana", out.Leads[0].FirstName)
}

func TestLeads_RequierenAutenticacion(t *testing.T) {
	app := buildTestApp(t)

	for _, path := range []string{"/api/leads", "/api/leads/refresh", "/api/dashboard/stats", "/api/leads/report"} {
		resp := doJSON(t, app, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "ruta %s", path)
		resp.Body.Close()
	}
}

func TestUpdateStatus_FlujoCompleto(t *testing.T) {
	app := buildTestApp(t)
	createAdmin(t, app)
	token, _ := login(t, app)

	// Cambio válido: sin writer configurado queda pendiente de sincronizar.
	resp := doJSON(t, app, http.MethodPut, "/api/leads/1/status",
		dto.UpdateStatusRequest{Status: entity.StatusContacted}, withToken(token))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.UpdateStatusResponse](t, resp)
	assert.True(t, out.Success)
	assert.Equal(t, "AppliedWithPendingSync", out.Result)
	assert.Equal(t, entity.StatusContacted, out.Lead.Status)

	// El cambio es visible en la lista y en las estadísticas.
	resp = doJSON(t, app, http.MethodGet, "/api/leads", nil, withToken(token))
	list := decode[dto.LeadsResponse](t, resp)
	assert.Equal(t, entity.StatusContacted, list.Leads[0].Status)

	resp = doJSON(t, app, http.MethodGet, "/api/dashboard/stats", nil, withToken(token))
	stats := decode[dto.DashboardStatsDTO](t, resp)
	assert.Equal(t, 1, stats.StatusBreakdown[entity.StatusContacted])

	// Lead inexistente → 404.
	resp = doJSON(t, app, http.MethodPut, "/api/leads/99/status",
		dto.UpdateStatusRequest{Status: entity.StatusContacted}, withToken(token))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Estado fuera del conjunto → 400.
	resp = doJSON(t, app, http.MethodPut, "/api/leads/1/status",
		dto.UpdateStatusRequest{Status: "Ghosted"}, withToken(token))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_STATUS", body.Code)
}

func TestDashboardStats_Contrato(t *testing.T) {
	app := buildTestApp(t)
	createAdmin(t, app)
	token, _ := login(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/stats", nil, withToken(token))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decode[dto.DashboardStatsDTO](t, resp)

	assert.Equal(t, 2, stats.TotalLeads)
	assert.Equal(t, 1, stats.EmailsSent)
	assert.Equal(t, 1, stats.FollowUpsNeeded)
	assert.Equal(t, 50, stats.ConversionRate)
	assert.Equal(t, 0, stats.ResponseRate)
	assert.Equal(t, map[string]int{"Healthcare": 1, "Technology": 1}, stats.IndustryBreakdown)
}

func TestLeadsReport_DevuelvePDF(t *testing.T) {
	app := buildTestApp(t)
	createAdmin(t, app)
	token, _ := login(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/leads/report", nil, withToken(token))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestHealth_Publico(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.HealthResponse](t, resp)
	assert.Equal(t, "OK", out.Status)
	assert.False(t, out.Timestamp.IsZero())
}
