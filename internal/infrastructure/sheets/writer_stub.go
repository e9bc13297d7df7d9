package sheets

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/leadgen-api/internal/domain/repository"
)

var _ repository.LeadWriter = (*StatusWriterStub)(nil)

// StatusWriterStub escritura de estado hacia la hoja, hoy un no-op que
// siempre reporta éxito: escribir en Google Sheets requiere OAuth2, que esta
// versión no configura. Se deja el log para auditar qué se habría escrito.
type StatusWriterStub struct {
	log zerolog.Logger
}

// NewStatusWriterStub construye el stub.
func NewStatusWriterStub(log zerolog.Logger) *StatusWriterStub {
	return &StatusWriterStub{log: log}
}

// UpdateStatus registra la intención de escritura y devuelve éxito.
func (w *StatusWriterStub) UpdateStatus(_ context.Context, leadID int, status string) error {
	w.log.Info().Int("lead_id", leadID).Str("status", status).
		Msg("write-back a la hoja deshabilitado (requiere OAuth2); cambio solo local")
	return nil
}
