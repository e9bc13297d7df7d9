package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/rs/zerolog"

	"github.com/jhoicas/leadgen-api/internal/application/auth"
	"github.com/jhoicas/leadgen-api/internal/application/dto"
	"github.com/jhoicas/leadgen-api/internal/domain"
)

// AuthHandler handlers HTTP de autenticación.
type AuthHandler struct {
	uc    *auth.AuthUseCase
	store *session.Store
	log   zerolog.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, store *session.Store, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, store: store, log: log}
}

// Login autentica al usuario y establece las dos pruebas de identidad.
// @Summary Iniciar sesión
// @Description Verifica email/password, establece la sesión por cookie y devuelve además un bearer token de respaldo
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION_ERROR", Message: "cuerpo de la petición inválido",
		})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION_ERROR", Message: "email y password son requeridos",
		})
	}

	out, id, err := h.uc.Login(c.Context(), req)
	if err != nil {
		// Mismo código y mensaje para email desconocido y password incorrecta.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "INVALID_CREDENTIALS", Message: "email o password inválidos",
			})
		}
		h.log.Error().Err(err).Msg("login")
		return internalError(c)
	}

	sess, err := h.store.Get(c)
	if err != nil {
		h.log.Error().Err(err).Msg("abrir sesión")
		return internalError(c)
	}
	sess.Set(sessKeyUserID, id.UserID)
	sess.Set(sessKeyEmail, id.Email)
	sess.Set(sessKeyName, id.Name)
	if err := sess.Save(); err != nil {
		h.log.Error().Err(err).Msg("guardar sesión")
		return internalError(c)
	}

	return c.JSON(out)
}

// Logout destruye la sesión server-side. El bearer token emitido en el login
// no se revoca: sigue siendo válido hasta su expiración.
// @Summary Cerrar sesión
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LogoutResponse
// @Router /api/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		h.log.Error().Err(err).Msg("abrir sesión")
		return internalError(c)
	}
	if err := sess.Destroy(); err != nil {
		h.log.Error().Err(err).Msg("destruir sesión")
		return internalError(c)
	}
	return c.JSON(dto.LogoutResponse{Success: true, Message: "sesión cerrada"})
}

// Status reporta el estado de autenticación. Siempre responde 200: la falta
// de identidad es un estado normal del cliente, no un error.
// @Summary Estado de autenticación
// @Tags auth
// @Produce json
// @Success 200 {object} dto.AuthStatusResponse
// @Router /api/auth/status [get]
func (h *AuthHandler) Status(c *fiber.Ctx) error {
	id := h.uc.CheckIdentity(sessionIdentity(c, h.store), bearerToken(c))
	if id == nil {
		return c.JSON(dto.AuthStatusResponse{Authenticated: false})
	}
	return c.JSON(dto.AuthStatusResponse{
		Authenticated: true,
		User:          &dto.UserResponse{ID: id.UserID, Email: id.Email, Name: id.Name},
	})
}

// Protected endpoint de verificación para clientes: responde con la identidad
// resuelta por el middleware.
// @Summary Recurso protegido de prueba
// @Tags auth
// @Produce json
// @Success 200 {object} dto.ProtectedResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/protected [get]
func (h *AuthHandler) Protected(c *fiber.Ctx) error {
	id := GetIdentity(c)
	return c.JSON(dto.ProtectedResponse{
		Message: "acceso autorizado",
		User:    dto.UserResponse{ID: id.UserID, Email: id.Email, Name: id.Name},
	})
}

// SetupAdmin alta administrativa inicial (idempotente sobre el email).
// @Summary Crear usuario administrador
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SetupAdminRequest true "Datos del administrador"
// @Success 200 {object} dto.SetupAdminResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/setup/admin [post]
func (h *AuthHandler) SetupAdmin(c *fiber.Ctx) error {
	var req dto.SetupAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION_ERROR", Message: "cuerpo de la petición inválido",
		})
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION_ERROR", Message: "email, password y name son requeridos",
		})
	}

	user, err := h.uc.CreateAdminUser(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "USER_EXISTS", Message: "ya existe un usuario con ese email",
			})
		}
		h.log.Error().Err(err).Msg("crear admin")
		return internalError(c)
	}

	return c.JSON(dto.SetupAdminResponse{
		Success: true,
		Message: "usuario administrador creado",
		UserID:  user.ID,
	})
}

// Health reporta vida del servicio.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /api/health [get]
func (h *AuthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "OK", Timestamp: time.Now().UTC()})
}

// internalError respuesta 500 con mensaje opaco; el detalle queda en el log.
func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL_ERROR", Message: "error interno del servidor",
	})
}
