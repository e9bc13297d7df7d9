package repository

import "context"

// LeadSource frontera de lectura hacia la hoja de cálculo externa.
// Devuelve la grilla cruda de celdas y el nombre de la pestaña que respondió.
// El consumidor debe tolerar cero filas, error HTTP o forma inesperada: ante
// cualquiera de ellos hace fallback al dataset fixture.
type LeadSource interface {
	FetchRows(ctx context.Context) (rows [][]string, sheet string, err error)
}

// LeadWriter escritura best-effort del estado de un lead hacia la fuente.
// La implementación actual es un stub que siempre reporta éxito (escribir en
// la hoja requiere OAuth2); el puerto existe para cuando llegue la
// persistencia real y para ejercitar el rollback en tests.
type LeadWriter interface {
	UpdateStatus(ctx context.Context, leadID int, status string) error
}
