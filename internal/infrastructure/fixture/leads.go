// Package fixture contiene el dataset de ejemplo que se sirve cuando la hoja
// de cálculo no está configurada o no responde. El dashboard nunca queda en
// blanco por un fallo de la fuente.
package fixture

import "github.com/jhoicas/leadgen-api/internal/domain/entity"

// Leads devuelve una copia nueva del dataset de ejemplo. Las industrias
// siguen las mismas reglas de keywords que el normalizador; el estado inicial
// es siempre "Not Contacted".
func Leads() []entity.Lead {
	src := []entity.Lead{
		{
			ID:             1,
			FirstName:      "Sarah",
			LastName:       "Johnson",
			LinkedInURL:    "https://linkedin.com/in/sarahjohnson",
			Title:          "Marketing Director",
			Email:          "sarah.johnson@techcorp.com",
			CompanyName:    "TechCorp Solutions",
			CompanyWebsite: "https://techcorp.com",
			Icebreaker:     "Hi Sarah, I noticed your recent post about digital transformation challenges. Our lead generation platform has helped similar companies in tech increase qualified leads by 300%.",
			Sent:           true,
			FollowUp:       false,
			CreatedAt:      "2024-01-15",
			Industry:       "Technology",
			Status:         entity.StatusNotContacted,
		},
		{
			ID:             2,
			FirstName:      "Michael",
			LastName:       "Chen",
			LinkedInURL:    "https://linkedin.com/in/michaelchen",
			Title:          "VP of Sales",
			Email:          "michael.chen@growthco.com",
			CompanyName:    "GrowthCo Marketing",
			CompanyWebsite: "https://growthco.com",
			Icebreaker:     "Michael, your company's focus on scaling B2B sales aligns perfectly with what we do. I'd love to share how we've helped similar agencies generate $2M+ in new revenue.",
			Sent:           true,
			FollowUp:       true,
			CreatedAt:      "2024-01-14",
			Industry:       "Retail",
			Status:         entity.StatusNotContacted,
		},
		{
			ID:             3,
			FirstName:      "Emily",
			LastName:       "Rodriguez",
			LinkedInURL:    "https://linkedin.com/in/emilyrodriguez",
			Title:          "CEO",
			Email:          "emily@startupventures.com",
			CompanyName:    "Startup Ventures",
			CompanyWebsite: "https://startupventures.com",
			Icebreaker:     "Emily, congratulations on your recent funding round! As you scale, lead generation becomes crucial. We've helped 50+ startups build predictable sales pipelines.",
			Sent:           false,
			FollowUp:       false,
			CreatedAt:      "2024-01-13",
			Industry:       "Other",
			Status:         entity.StatusNotContacted,
		},
		{
			ID:             4,
			FirstName:      "David",
			LastName:       "Thompson",
			LinkedInURL:    "https://linkedin.com/in/davidthompson",
			Title:          "Head of Business Development",
			Email:          "david.thompson@innovatetech.com",
			CompanyName:    "InnovateTech",
			CompanyWebsite: "https://innovatetech.com",
			Icebreaker:     "David, I saw your presentation on revenue growth strategies. Our lead gen system could complement your existing efforts and help you hit those ambitious targets.",
			Sent:           true,
			FollowUp:       false,
			CreatedAt:      "2024-01-12",
			Industry:       "Technology",
			Status:         entity.StatusNotContacted,
		},
		{
			ID:             5,
			FirstName:      "Lisa",
			LastName:       "Wang",
			LinkedInURL:    "https://linkedin.com/in/lisawang",
			Title:          "CMO",
			Email:          "lisa.wang@digitalfirst.com",
			CompanyName:    "Digital First Agency",
			CompanyWebsite: "https://digitalfirst.com",
			Icebreaker:     "Lisa, your agency's client success stories are impressive. I believe our lead generation expertise could help you attract even more high-value clients.",
			Sent:           false,
			FollowUp:       true,
			CreatedAt:      "2024-01-11",
			Industry:       "Technology",
			Status:         entity.StatusNotContacted,
		},
		{
			ID:             6,
			FirstName:      "James",
			LastName:       "Parker",
			LinkedInURL:    "https://linkedin.com/in/jamesparker",
			Title:          "Sales Manager",
			Email:          "james.parker@salesforce.com",
			CompanyName:    "SalesForce Pro",
			CompanyWebsite: "https://salesforcepro.com",
			Icebreaker:     "James, with your experience in sales optimization, you'll appreciate our data-driven approach to lead generation. We've helped teams like yours reduce sales cycles by 40%.",
			Sent:           true,
			FollowUp:       true,
			CreatedAt:      "2024-01-10",
			Industry:       "Other",
			Status:         entity.StatusNotContacted,
		},
	}
	out := make([]entity.Lead, len(src))
	copy(out, src)
	return out
}
