package leads_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/leadgen-api/internal/application/leads"
	"github.com/jhoicas/leadgen-api/internal/domain"
	"github.com/jhoicas/leadgen-api/internal/domain/entity"
	"github.com/jhoicas/leadgen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de LeadSource y LeadWriter
// ──────────────────────────────────────────────────────────────────────────────

type fakeSource struct {
	rows  [][]string
	sheet string
	err   error
	calls int
}

func (s *fakeSource) FetchRows(context.Context) ([][]string, string, error) {
	s.calls++
	if s.err != nil {
		return nil, "", s.err
	}
	return s.rows, s.sheet, nil
}

type fakeWriter struct {
	err   error
	calls int
}

func (w *fakeWriter) UpdateStatus(context.Context, int, string) error {
	w.calls++
	return w.err
}

var testFixture = []entity.Lead{
	{ID: 1, FirstName: "Ana", CompanyName: "Acme", Industry: "Other", Status: entity.StatusNotContacted},
	{ID: 2, FirstName: "Luis", CompanyName: "TechCorp", Industry: "Technology", Status: entity.StatusNotContacted},
}

// newLeadUC construye el caso de uso evitando el clásico nil tipado en las
// interfaces: un *fakeSource nil se pasa como interface nil de verdad.
func newLeadUC(source *fakeSource, writer *fakeWriter) *leads.LeadUseCase {
	var src repository.LeadSource
	if source != nil {
		src = source
	}
	var wrt repository.LeadWriter
	if writer != nil {
		wrt = writer
	}
	n := leads.NewNormalizer(leads.DefaultPolicy())
	return leads.NewLeadUseCase(src, wrt, n, testFixture, zerolog.Nop())
}

var sheetRows = [][]string{
	{"first_name", "last_name", "linkedin_url", "title", "email", "company_name", "company_website", "icebreaker", "sent", "follow_up"},
	{"Sara", "Gomez", "", "CTO", "sara@foo.com", "Foo Clinic", "fooclinic.com", "", "TRUE", "FALSE"},
	{"Pedro", "Ruiz", "", "CEO", "pedro@bar.com", "Bar Shop", "barshop.com", "", "FALSE", "TRUE"},
}

// ──────────────────────────────────────────────────────────────────────────────
// Carga y fallback
// ──────────────────────────────────────────────────────────────────────────────

// Fuente sana → colección normalizada desde la hoja, sin warning.
func TestLeads_FuenteDisponible(t *testing.T) {
	source := &fakeSource{rows: sheetRows, sheet: "Leads"}
	uc := newLeadUC(source, nil)

	items, origin, warning := uc.Leads(context.Background())

	require.Len(t, items, 2)
	assert.Equal(t, leads.SourceSheets, origin)
	assert.Empty(t, warning)
	assert.Equal(t, "Sara", items[0].FirstName)
	assert.Equal(t, "Healthcare", items[0].Industry)
}

// La colección se carga una sola vez; los accesos siguientes sirven la copia
// en memoria sin volver a la fuente.
func TestLeads_CargaUnicaHastaRefresh(t *testing.T) {
	source := &fakeSource{rows: sheetRows, sheet: "Leads"}
	uc := newLeadUC(source, nil)

	uc.Leads(context.Background())
	uc.Leads(context.Background())
	assert.Equal(t, 1, source.calls)

	uc.Refresh(context.Background())
	assert.Equal(t, 2, source.calls)
}

// Error de la fuente → fixture con warning visible, nunca un error al cliente.
func TestLeads_FallbackPorError(t *testing.T) {
	source := &fakeSource{err: domain.ErrSheetUnavailable}
	uc := newLeadUC(source, nil)

	items, origin, warning := uc.Leads(context.Background())

	assert.Equal(t, leads.SourceFixture, origin)
	assert.Equal(t, leads.WarnFallback, warning)
	assert.Len(t, items, len(testFixture))
}

// Hoja sin filas útiles (solo cabecera) → mismo fallback que un error.
func TestLeads_FallbackPorHojaVacia(t *testing.T) {
	source := &fakeSource{rows: sheetRows[:1], sheet: "Leads"}
	uc := newLeadUC(source, nil)

	_, origin, warning := uc.Leads(context.Background())

	assert.Equal(t, leads.SourceFixture, origin)
	assert.Equal(t, leads.WarnFallback, warning)
}

// Sin fuente configurada la app vive del fixture desde el arranque.
func TestLeads_SinFuenteConfigurada(t *testing.T) {
	uc := newLeadUC(nil, nil)

	items, origin, warning := uc.Leads(context.Background())

	assert.Equal(t, leads.SourceFixture, origin)
	assert.Equal(t, leads.WarnFallback, warning)
	require.Len(t, items, 2)
}

// La colección devuelta es una copia: mutarla no afecta al estado interno.
func TestLeads_DevuelveCopia(t *testing.T) {
	uc := newLeadUC(nil, nil)

	items, _, _ := uc.Leads(context.Background())
	items[0].Status = entity.StatusClosed

	again, _, _ := uc.Leads(context.Background())
	assert.Equal(t, entity.StatusNotContacted, again[0].Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualización optimista de estado
// ──────────────────────────────────────────────────────────────────────────────

// Writer que confirma → Applied y el cambio persiste en la colección.
func TestUpdateStatus_Aplicado(t *testing.T) {
	writer := &fakeWriter{}
	uc := newLeadUC(nil, writer)
	uc.Leads(context.Background())

	result, lead, err := uc.UpdateStatus(context.Background(), 1, entity.StatusContacted)

	require.NoError(t, err)
	assert.Equal(t, leads.ResultApplied, result)
	assert.Equal(t, entity.StatusContacted, lead.Status)
	assert.Equal(t, 1, writer.calls)

	items, _, _ := uc.Leads(context.Background())
	assert.Equal(t, entity.StatusContacted, items[0].Status)
}

// Sin writer el cambio queda local, pendiente de sincronizar.
func TestUpdateStatus_SinWriterQuedaPendiente(t *testing.T) {
	uc := newLeadUC(nil, nil)
	uc.Leads(context.Background())

	result, lead, err := uc.UpdateStatus(context.Background(), 2, entity.StatusReplied)

	require.NoError(t, err)
	assert.Equal(t, leads.ResultAppliedWithPendingSync, result)
	assert.Equal(t, entity.StatusReplied, lead.Status)
}

// Writer que falla → Rejected y rollback de la mutación optimista.
func TestUpdateStatus_RollbackSiFallaElWriter(t *testing.T) {
	writer := &fakeWriter{err: errors.New("cuota excedida")}
	uc := newLeadUC(nil, writer)
	uc.Leads(context.Background())

	result, lead, err := uc.UpdateStatus(context.Background(), 1, entity.StatusBookedCall)

	require.Error(t, err)
	assert.Equal(t, leads.ResultRejected, result)
	assert.Nil(t, lead)

	items, _, _ := uc.Leads(context.Background())
	assert.Equal(t, entity.StatusNotContacted, items[0].Status)
}

// Lead inexistente → ErrNotFound; no se llama al writer.
func TestUpdateStatus_LeadInexistente(t *testing.T) {
	writer := &fakeWriter{}
	uc := newLeadUC(nil, writer)
	uc.Leads(context.Background())

	_, _, err := uc.UpdateStatus(context.Background(), 99, entity.StatusContacted)

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, writer.calls)
}

// Estado fuera del conjunto cerrado → ErrInvalidStatus, sin mutación.
func TestUpdateStatus_EstadoInvalido(t *testing.T) {
	uc := newLeadUC(nil, nil)
	uc.Leads(context.Background())

	_, _, err := uc.UpdateStatus(context.Background(), 1, "Ghosted")

	require.ErrorIs(t, err, domain.ErrInvalidStatus)
	items, _, _ := uc.Leads(context.Background())
	assert.Equal(t, entity.StatusNotContacted, items[0].Status)
}

// Cualquier transición entre estados válidos está permitida: no es un funnel.
func TestUpdateStatus_TransicionesLibres(t *testing.T) {
	uc := newLeadUC(nil, nil)
	uc.Leads(context.Background())

	for _, status := range []string{
		entity.StatusClosed, entity.StatusNotContacted, entity.StatusBookedCall,
	} {
		result, lead, err := uc.UpdateStatus(context.Background(), 1, status)
		require.NoError(t, err, "transición a %q", status)
		assert.Equal(t, leads.ResultAppliedWithPendingSync, result)
		assert.Equal(t, status, lead.Status)
	}
}
