package dto

import "time"

// LoginRequest entrada para login (email + password en texto plano).
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse salida de un usuario (sin password_hash).
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResponse salida del login: sesión establecida vía cookie y además un
// bearer token de respaldo para clientes sin soporte de cookies.
type LoginResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// AuthStatusResponse salida de GET /api/auth/status. Nunca es un error HTTP:
// siempre 200, con authenticated=false si no hay prueba de identidad válida.
type AuthStatusResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user,omitempty"`
}

// LogoutResponse salida del logout. Destruye la sesión; el bearer token
// emitido en el login no se revoca.
type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ProtectedResponse salida del endpoint protegido de prueba.
type ProtectedResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// SetupAdminRequest entrada del setup administrativo inicial.
type SetupAdminRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// SetupAdminResponse salida del setup administrativo.
type SetupAdminResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// HealthResponse salida de GET /api/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
