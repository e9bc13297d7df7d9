package entity

// Estados válidos de un lead. Es un conjunto de etiquetas sin orden: la UI
// permite saltar de cualquier estado a cualquier otro.
const (
	StatusNotContacted = "Not Contacted"
	StatusContacted    = "Contacted"
	StatusReplied      = "Replied"
	StatusBookedCall   = "Booked Call"
	StatusClosed       = "Closed"
)

// LeadStatuses todos los estados, en el orden en que los muestra el dashboard.
var LeadStatuses = []string{
	StatusNotContacted,
	StatusContacted,
	StatusReplied,
	StatusBookedCall,
	StatusClosed,
}

// ValidStatus indica si s pertenece al conjunto cerrado de estados.
func ValidStatus(s string) bool {
	for _, v := range LeadStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Lead registro de contacto normalizado desde una fila de la hoja de cálculo.
// El ID es posicional (índice 1-based sobre las filas emitidas): reordenar la
// hoja de origen cambia las identidades.
//
// Sent y FollowUp son los booleanos legacy de la hoja; conviven con Status y
// pueden contradecirse entre sí. Ambos se conservan para los badges antiguos.
type Lead struct {
	ID             int
	FirstName      string
	LastName       string
	LinkedInURL    string
	Title          string
	Email          string
	CompanyName    string
	CompanyWebsite string
	Icebreaker     string
	Sent           bool
	FollowUp       bool
	CreatedAt      string // fecha YYYY-MM-DD, como la expone la fuente
	Industry       string // derivada por keywords sobre company_name + website
	Status         string
}
