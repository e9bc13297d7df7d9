package entity

import "time"

// Identity identidad autenticada, resuelta por sesión o por bearer token.
// Los call sites nunca ven cuál de los dos mecanismos la produjo.
type Identity struct {
	UserID string
	Email  string
	Name   string
}

// TokenIdentity payload asociado a un bearer token emitido en el login.
// Invariante: el token es válido si y solo si sigue presente en el store
// y ExpiresAt es posterior a ahora.
type TokenIdentity struct {
	Identity
	ExpiresAt time.Time
}
