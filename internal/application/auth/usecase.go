// Package auth implementa los casos de uso de autenticación: login con doble
// prueba de identidad (sesión server-side + bearer token), verificación de
// identidad y el alta administrativa inicial.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/leadgen-api/internal/application/dto"
	"github.com/jhoicas/leadgen-api/internal/domain"
	"github.com/jhoicas/leadgen-api/internal/domain/entity"
	"github.com/jhoicas/leadgen-api/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	users  repository.UserRepository
	tokens repository.TokenStore
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, tokens repository.TokenStore) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens}
}

// Login verifica email/password contra el hash bcrypt almacenado y, si son
// válidos, emite un bearer token de respaldo. Devuelve domain.ErrInvalidCredentials
// tanto para email desconocido como para password incorrecta: la respuesta no
// permite distinguir los dos casos.
//
// La sesión server-side la establece el handler HTTP con la identidad devuelta;
// aquí solo se valida y se emite el token.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, *entity.Identity, error) {
	user, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	id := entity.Identity{UserID: user.ID, Email: user.Email, Name: user.Name}
	tok, _ := uc.tokens.Issue(id)

	return &dto.LoginResponse{
		Success: true,
		User:    dto.UserResponse{ID: user.ID, Email: user.Email, Name: user.Name},
		Token:   tok,
	}, &id, nil
}

// CheckIdentity reconcilia las dos pruebas de identidad en orden fijo: la
// sesión tiene precedencia; si no hay, se intenta el bearer token. Un token
// expirado se evicta en el Verify y se reporta como no autenticado.
// Devuelve nil si ninguna prueba es válida.
func (uc *AuthUseCase) CheckIdentity(sessionID *entity.Identity, token string) *entity.Identity {
	if sessionID != nil {
		return sessionID
	}
	if token == "" {
		return nil
	}
	if id, ok := uc.tokens.Verify(token); ok {
		return id
	}
	return nil
}

// CreateAdminUser alta administrativa idempotente: si ya existe un usuario con
// ese email devuelve domain.ErrEmailAlreadyExists. La password se hashea con
// bcrypt a costo fijo (DefaultCost, igual que el setup original).
func (uc *AuthUseCase) CreateAdminUser(ctx context.Context, in dto.SetupAdminRequest) (*entity.User, error) {
	existing, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario existente: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashear password: %w", err)
	}

	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		CreatedAt:    time.Now(),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
