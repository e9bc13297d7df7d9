package leads

import "regexp"

// Conjuntos de keywords por industria, en orden de prioridad: la primera que
// coincide gana. El texto evaluado es company_name + " " + company_website en
// minúsculas. El orden (healthcare primero) viene del dataset real, dominado
// por clínicas y consultorios.
var industryRules = []struct {
	name string
	re   *regexp.Regexp
}{
	{"Healthcare", regexp.MustCompile(`clinic|hospital|medical|health|dental|orthodontic|pharma|care|surgery|doctor|mayo`)},
	{"Technology", regexp.MustCompile(`tech|software|app|digital|innovate`)},
	{"Finance", regexp.MustCompile(`finance|bank|invest|capital|fund`)},
	{"Retail", regexp.MustCompile(`retail|shop|store|market|commerce`)},
	{"Education", regexp.MustCompile(`education|university|school|academic`)},
}
