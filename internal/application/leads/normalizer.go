// Package leads implementa la normalización de filas de hoja de cálculo a
// entidades Lead y el flujo de actualización optimista de estado.
package leads

import (
	"strings"
	"time"

	"github.com/jhoicas/leadgen-api/internal/domain/entity"
)

// Policy política de normalización. Las dos convenciones históricas de la
// fuente (una descarta la fila 0 como cabecera, la otra escanea desde la fila
// 0; una usa Healthcare como industria por defecto, la otra Other) se eligen
// por configuración, nunca por caminos de código duplicados.
type Policy struct {
	HeaderRow       bool   // true: la fila 0 se descarta como cabecera
	DefaultIndustry string // industria cuando ninguna keyword coincide
}

// DefaultPolicy convención documentada de esta implementación: cabecera en la
// fila 0 y "Other" como industria por defecto.
func DefaultPolicy() Policy {
	return Policy{HeaderRow: true, DefaultIndustry: "Other"}
}

// Normalizer mapea la grilla cruda de celdas al esquema Lead.
type Normalizer struct {
	policy Policy
	now    func() time.Time
}

// NewNormalizer construye el normalizador con la política dada.
func NewNormalizer(p Policy) *Normalizer {
	if p.DefaultIndustry == "" {
		p.DefaultIndustry = DefaultPolicy().DefaultIndustry
	}
	return &Normalizer{policy: p, now: time.Now}
}

// Mapeo posicional fijo de columnas (A–J):
// 0=first_name, 1=last_name, 2=linkedin_url, 3=title, 4=email,
// 5=company_name, 6=company_website, 7=icebreaker, 8=sent, 9=follow_up.
const (
	colFirstName = iota
	colLastName
	colLinkedIn
	colTitle
	colEmail
	colCompanyName
	colCompanyWebsite
	colIcebreaker
	colSent
	colFollowUp
)

// Normalize convierte la grilla en leads. Filas completamente en blanco no
// emiten lead; el ID es un índice secuencial 1-based sobre las filas emitidas
// en orden de origen (no es estable entre re-fetches si la hoja cambia).
// Nunca falla: una grilla vacía produce una colección vacía.
func (n *Normalizer) Normalize(rows [][]string) []entity.Lead {
	start := 0
	if n.policy.HeaderRow {
		start = 1
	}

	today := n.now().Format("2006-01-02")
	var out []entity.Lead
	for i := start; i < len(rows); i++ {
		row := rows[i]
		if blankRow(row) {
			continue
		}
		company := cell(row, colCompanyName)
		website := cell(row, colCompanyWebsite)
		out = append(out, entity.Lead{
			ID:             len(out) + 1,
			FirstName:      cell(row, colFirstName),
			LastName:       cell(row, colLastName),
			LinkedInURL:    cell(row, colLinkedIn),
			Title:          cell(row, colTitle),
			Email:          cell(row, colEmail),
			CompanyName:    company,
			CompanyWebsite: website,
			Icebreaker:     cell(row, colIcebreaker),
			Sent:           truthy(cell(row, colSent)),
			FollowUp:       truthy(cell(row, colFollowUp)),
			CreatedAt:      today,
			Industry:       n.DeriveIndustry(company, website),
			Status:         entity.StatusNotContacted,
		})
	}
	return out
}

// DeriveIndustry aplica los conjuntos de keywords en orden sobre
// company_name + website en minúsculas; sin coincidencia devuelve la
// industria por defecto de la política.
func (n *Normalizer) DeriveIndustry(companyName, website string) string {
	text := strings.ToLower(companyName + " " + website)
	for _, rule := range industryRules {
		if rule.re.MatchString(text) {
			return rule.name
		}
	}
	return n.policy.DefaultIndustry
}

// cell devuelve la celda idx o "" si la fila es más corta.
func cell(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// truthy: valores aceptados como verdadero en las columnas sent/follow_up.
func truthy(v string) bool {
	return v == "TRUE" || v == "true" || v == "1"
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
