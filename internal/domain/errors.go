package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound = errors.New("recurso no encontrado")
	// ErrInvalidCredentials cubre tanto "email desconocido" como "password
	// incorrecta": un único error impide enumerar usuarios por la respuesta.
	ErrInvalidCredentials = errors.New("email o password inválidos")
	ErrEmailAlreadyExists = errors.New("el usuario ya existe")
	ErrInvalidStatus      = errors.New("estado de lead inválido")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrSheetUnavailable   = errors.New("hoja de cálculo no disponible")
)
