package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/leadgen-api/internal/application/auth"
	"github.com/jhoicas/leadgen-api/internal/application/dto"
	"github.com/jhoicas/leadgen-api/internal/domain/entity"
)

// Claves de la sesión Fiber y del local de identidad.
const (
	sessKeyUserID = "user_id"
	sessKeyEmail  = "user_email"
	sessKeyName   = "user_name"

	localIdentity = "identity"
)

// AuthMiddleware resuelve la identidad con prioridad fija: primero la sesión
// (cookie), después el bearer token (?token= o Authorization). Los handlers
// nunca saben cuál de los dos mecanismos autenticó; solo ven la Identity en
// c.Locals.
func AuthMiddleware(store *session.Store, uc *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uc.CheckIdentity(sessionIdentity(c, store), bearerToken(c))
		if id == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "UNAUTHORIZED", Message: "autenticación requerida",
			})
		}
		c.Locals(localIdentity, id)
		return c.Next()
	}
}

// GetIdentity devuelve la identidad del contexto (después del middleware de auth).
func GetIdentity(c *fiber.Ctx) *entity.Identity {
	v := c.Locals(localIdentity)
	if v == nil {
		return nil
	}
	id, _ := v.(*entity.Identity)
	return id
}

// sessionIdentity lee la identidad guardada en la sesión server-side.
// Devuelve nil si no hay sesión o está vacía.
func sessionIdentity(c *fiber.Ctx, store *session.Store) *entity.Identity {
	sess, err := store.Get(c)
	if err != nil {
		return nil
	}
	userID, _ := sess.Get(sessKeyUserID).(string)
	if userID == "" {
		return nil
	}
	email, _ := sess.Get(sessKeyEmail).(string)
	name, _ := sess.Get(sessKeyName).(string)
	return &entity.Identity{UserID: userID, Email: email, Name: name}
}

// bearerToken extrae el token de respaldo: query ?token= o header
// Authorization (con o sin prefijo Bearer), igual que el backend original.
func bearerToken(c *fiber.Ctx) string {
	if tok := c.Query("token"); tok != "" {
		return tok
	}
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
