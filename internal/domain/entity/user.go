package entity

import "time"

// User representa un usuario del dashboard. Se crea una sola vez vía el
// setup administrativo; no se actualiza ni se borra en operación normal.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	CreatedAt    time.Time
}
