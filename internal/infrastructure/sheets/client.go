// Package sheets implementa LeadSource contra la API de Google Sheets
// (acceso de solo lectura por API key).
package sheets

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/jhoicas/leadgen-api/internal/domain"
	"github.com/jhoicas/leadgen-api/internal/domain/repository"
)

var _ repository.LeadSource = (*Client)(nil)

// Config parámetros de acceso a la hoja.
type Config struct {
	SpreadsheetID string
	Candidates    []string // nombres de pestaña a probar, en orden
	ReadRange     string   // ej: A1:J1000
	Timeout       time.Duration
}

// Client cliente de lectura de la hoja de leads. Prueba los nombres de
// pestaña candidatos en orden y se queda con el primero que devuelve filas
// (la hoja real ha vivido en pestañas con nombres distintos según la época).
type Client struct {
	svc *sheetsapi.Service
	cfg Config
	log zerolog.Logger
}

// NewClient construye el cliente con una API key (datos públicos de lectura).
func NewClient(ctx context.Context, apiKey string, cfg Config, log zerolog.Logger) (*Client, error) {
	svc, err := sheetsapi.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("sheets: crear servicio: %w", err)
	}
	return &Client{svc: svc, cfg: cfg, log: log}, nil
}

// FetchRows descarga la grilla de celdas. Acota la petición con el timeout
// configurado; si ningún candidato responde con filas devuelve
// domain.ErrSheetUnavailable para que el caso de uso caiga al fixture.
func (c *Client) FetchRows(ctx context.Context) ([][]string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	for _, name := range c.cfg.Candidates {
		rng := name
		if c.cfg.ReadRange != "" {
			rng = fmt.Sprintf("%s!%s", name, c.cfg.ReadRange)
		}
		vr, err := c.svc.Spreadsheets.Values.Get(c.cfg.SpreadsheetID, rng).Context(ctx).Do()
		if err != nil {
			c.log.Debug().Err(err).Str("sheet", name).Msg("pestaña no disponible")
			continue
		}
		if len(vr.Values) == 0 {
			c.log.Debug().Str("sheet", name).Msg("pestaña sin filas")
			continue
		}
		return toStringRows(vr.Values), name, nil
	}

	return nil, "", fmt.Errorf("%w: ningún candidato respondió con filas", domain.ErrSheetUnavailable)
}

// toStringRows aplana la grilla de interface{} de la API a strings.
func toStringRows(values [][]interface{}) [][]string {
	rows := make([][]string, 0, len(values))
	for _, raw := range values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			if cell == nil {
				row = append(row, "")
				continue
			}
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows
}
