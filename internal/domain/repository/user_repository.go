package repository

import (
	"context"

	"github.com/jhoicas/leadgen-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios (tabla users).
type UserRepository interface {
	// Create persiste un nuevo usuario. Devuelve domain.ErrEmailAlreadyExists
	// si el email ya está registrado (constraint único).
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail busca por email con igualdad exacta (case-sensitive).
	// Devuelve (nil, nil) si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindByID devuelve (nil, nil) si no existe.
	FindByID(ctx context.Context, id string) (*entity.User, error)
}
