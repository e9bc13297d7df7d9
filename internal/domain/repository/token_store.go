package repository

import (
	"time"

	"github.com/jhoicas/leadgen-api/internal/domain/entity"
)

// TokenStore puerto del mapa de bearer tokens. La estrategia de almacenamiento
// (mapa en memoria, cache externa) es intercambiable detrás de esta interfaz.
//
// Los tokens nunca se refrescan: cada login emite un valor nuevo. El logout
// no los revoca; expiran solos (gap conocido heredado del sistema original).
type TokenStore interface {
	// Issue registra un token nuevo para la identidad y devuelve el valor
	// opaco junto con su instante de expiración.
	Issue(id entity.Identity) (token string, expiresAt time.Time)
	// Verify devuelve la identidad si el token existe y no ha expirado.
	// Un token expirado encontrado en el mapa se elimina (expiración lazy):
	// la evicción es permanente.
	Verify(token string) (*entity.Identity, bool)
	// RevokeExpired barre el mapa y elimina las entradas vencidas.
	// Devuelve cuántas eliminó.
	RevokeExpired() int
}
