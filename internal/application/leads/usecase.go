package leads

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/leadgen-api/internal/domain"
	"github.com/jhoicas/leadgen-api/internal/domain/entity"
	"github.com/jhoicas/leadgen-api/internal/domain/repository"
)

// Origen de la colección servida.
const (
	SourceSheets  = "sheets"
	SourceFixture = "fixture"
)

// Resultado de una actualización de estado.
const (
	ResultApplied                = "Applied"
	ResultAppliedWithPendingSync = "AppliedWithPendingSync"
	ResultRejected               = "Rejected"
)

// WarnFallback aviso visible al usuario cuando la hoja no estuvo disponible y
// se sirvió el dataset fixture. El fallback es un trade-off deliberado de
// disponibilidad, nunca silencioso.
const WarnFallback = "No se pudo leer la hoja de cálculo; mostrando datos de ejemplo."

// LeadUseCase mantiene la colección de leads en memoria de proceso y la
// expone al dashboard. La colección se carga de la hoja (o del fixture) en el
// primer acceso y se reemplaza en cada Refresh; las mutaciones de estado son
// optimistas sobre esta copia local. El RWMutex serializa el acceso bajo
// peticiones concurrentes.
type LeadUseCase struct {
	source     repository.LeadSource // nil si Sheets no está configurado
	writer     repository.LeadWriter // nil si no hay sync remoto
	normalizer *Normalizer
	fixture    []entity.Lead
	log        zerolog.Logger

	mu      sync.RWMutex
	leads   []entity.Lead
	origin  string
	warning string
	loaded  bool
}

// NewLeadUseCase construye el caso de uso. source y writer pueden ser nil.
func NewLeadUseCase(
	source repository.LeadSource,
	writer repository.LeadWriter,
	normalizer *Normalizer,
	fixture []entity.Lead,
	log zerolog.Logger,
) *LeadUseCase {
	return &LeadUseCase{
		source:     source,
		writer:     writer,
		normalizer: normalizer,
		fixture:    fixture,
		log:        log,
	}
}

// Leads devuelve la colección actual, cargándola de la fuente si todavía no
// se ha hecho. Devuelve también el origen ("sheets"/"fixture") y el warning
// de fallback si aplica.
func (uc *LeadUseCase) Leads(ctx context.Context) ([]entity.Lead, string, string) {
	uc.mu.RLock()
	if uc.loaded {
		defer uc.mu.RUnlock()
		return copyLeads(uc.leads), uc.origin, uc.warning
	}
	uc.mu.RUnlock()
	return uc.Refresh(ctx)
}

// Refresh vuelve a leer la fuente y reemplaza la colección. Ante error de
// transporte o resultado vacío cae al fixture con warning; nunca devuelve un
// dashboard en blanco por un fallo de la hoja.
func (uc *LeadUseCase) Refresh(ctx context.Context) ([]entity.Lead, string, string) {
	leads, origin, warning := uc.fetch(ctx)

	uc.mu.Lock()
	uc.leads = leads
	uc.origin = origin
	uc.warning = warning
	uc.loaded = true
	out := copyLeads(uc.leads)
	uc.mu.Unlock()

	return out, origin, warning
}

func (uc *LeadUseCase) fetch(ctx context.Context) ([]entity.Lead, string, string) {
	if uc.source == nil {
		uc.log.Warn().Msg("fuente de leads no configurada, usando fixture")
		return copyLeads(uc.fixture), SourceFixture, WarnFallback
	}

	rows, sheet, err := uc.source.FetchRows(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("leer hoja de cálculo, fallback a fixture")
		return copyLeads(uc.fixture), SourceFixture, WarnFallback
	}

	leads := uc.normalizer.Normalize(rows)
	if len(leads) == 0 {
		uc.log.Warn().Str("sheet", sheet).Msg("hoja sin filas útiles, fallback a fixture")
		return copyLeads(uc.fixture), SourceFixture, WarnFallback
	}

	uc.log.Info().Str("sheet", sheet).Int("leads", len(leads)).Msg("leads normalizados desde la hoja")
	return leads, SourceSheets, ""
}

// Snapshot copia de la colección actual sin disparar carga. Para el
// Aggregator y el reporte PDF.
func (uc *LeadUseCase) Snapshot() []entity.Lead {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return copyLeads(uc.leads)
}

// UpdateStatus cambia el estado de un lead. Cualquier transición entre
// estados válidos está permitida (no es un funnel ordenado). La mutación
// local es optimista: se aplica primero y, si la escritura remota falla, se
// revierte y el resultado es Rejected. Sin writer configurado el cambio queda
// local y pendiente de sincronizar (AppliedWithPendingSync).
//
// Un leadID desconocido devuelve domain.ErrNotFound; un estado fuera del
// conjunto cerrado devuelve domain.ErrInvalidStatus.
func (uc *LeadUseCase) UpdateStatus(ctx context.Context, leadID int, status string) (string, *entity.Lead, error) {
	if !entity.ValidStatus(status) {
		return "", nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	uc.mu.Lock()
	idx := -1
	for i := range uc.leads {
		if uc.leads[i].ID == leadID {
			idx = i
			break
		}
	}
	if idx < 0 {
		uc.mu.Unlock()
		return "", nil, domain.ErrNotFound
	}
	prev := uc.leads[idx].Status
	uc.leads[idx].Status = status
	updated := uc.leads[idx]
	uc.mu.Unlock()

	if uc.writer == nil {
		return ResultAppliedWithPendingSync, &updated, nil
	}

	if err := uc.writer.UpdateStatus(ctx, leadID, status); err != nil {
		// Rollback de la mutación optimista.
		uc.mu.Lock()
		if idx < len(uc.leads) && uc.leads[idx].ID == leadID {
			uc.leads[idx].Status = prev
		}
		uc.mu.Unlock()
		uc.log.Error().Err(err).Int("lead_id", leadID).Msg("sincronizar estado del lead")
		return ResultRejected, nil, fmt.Errorf("sincronizar estado: %w", err)
	}

	return ResultApplied, &updated, nil
}

func copyLeads(src []entity.Lead) []entity.Lead {
	out := make([]entity.Lead, len(src))
	copy(out, src)
	return out
}
