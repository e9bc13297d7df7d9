// Package memory implementa el TokenStore como un mapa en memoria de proceso
// protegido por mutex. El mapa es estado compartido entre peticiones HTTP
// concurrentes: todo insert/lookup/evict pasa por el lock.
package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/leadgen-api/internal/domain/entity"
	"github.com/jhoicas/leadgen-api/internal/domain/repository"
	"github.com/jhoicas/leadgen-api/pkg/token"
)

var _ repository.TokenStore = (*TokenStore)(nil)

// TokenStore mapa de bearer tokens con expiración lazy.
type TokenStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entity.TokenIdentity
	now     func() time.Time
}

// NewTokenStore construye el store con el TTL dado (24h en producción).
func NewTokenStore(ttl time.Duration) *TokenStore {
	return newTokenStore(ttl, time.Now)
}

func newTokenStore(ttl time.Duration, now func() time.Time) *TokenStore {
	return &TokenStore{
		ttl:     ttl,
		entries: make(map[string]entity.TokenIdentity),
		now:     now,
	}
}

// Issue registra un token nuevo. Cada login emite un valor distinto; no hay
// refresh de tokens existentes.
func (s *TokenStore) Issue(id entity.Identity) (string, time.Time) {
	tok := token.NewOpaque()
	exp := s.now().Add(s.ttl)

	s.mu.Lock()
	s.entries[tok] = entity.TokenIdentity{Identity: id, ExpiresAt: exp}
	s.mu.Unlock()

	return tok, exp
}

// Verify devuelve la identidad si el token existe y no ha vencido. Una
// entrada vencida se elimina en el acto: la siguiente verificación del mismo
// valor ya no la encuentra.
func (s *TokenStore) Verify(tok string) (*entity.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[tok]
	if !ok {
		return nil, false
	}
	if !entry.ExpiresAt.After(s.now()) {
		delete(s.entries, tok)
		return nil, false
	}
	id := entry.Identity
	return &id, true
}

// RevokeExpired barre el mapa completo y elimina las entradas vencidas.
func (s *TokenStore) RevokeExpired() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for tok, entry := range s.entries {
		if !entry.ExpiresAt.After(now) {
			delete(s.entries, tok)
			removed++
		}
	}
	return removed
}

// Len cantidad de tokens vivos o vencidos aún no evictados.
func (s *TokenStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
