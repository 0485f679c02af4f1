package pages

import (
	"html/template"

	"github.com/lexcentre/website/internal/config"
	"github.com/lexcentre/website/internal/content"
	"github.com/lexcentre/website/internal/models"
	"github.com/lexcentre/website/internal/ui"
)

type Service struct {
	fetcher content.Fetcher
	ui      ui.Service
	config  *config.Config
}

func New(fetcher content.Fetcher, ui ui.Service, config *config.Config) *Service {
	return &Service{
		fetcher: fetcher,
		ui:      ui,
		config:  config,
	}
}

// The programs-and-initiatives catalog. Editorial copy that changes
// a few times a year, maintained here rather than in the store.
var catalog = []models.Service{
	{
		Slug:    "community-legal-clinics",
		Name:    "Community Legal Clinics",
		Summary: "Free walk-in clinics run with partner law offices, covering tenancy, consumer and employment questions.",
		Description: template.HTML(
			"<p>Our monthly clinics pair visitors with volunteer solicitors for a free half-hour " +
				"consultation. No appointment is needed and no question is too small.</p>",
		),
	},
	{
		Slug:    "schools-programme",
		Name:    "Schools Programme",
		Summary: "Classroom modules and teacher training that bring practical legal literacy into secondary education.",
		Description: template.HTML(
			"<p>We develop curriculum materials, train teachers and run mock-trial days so that " +
				"students leave school knowing their rights and obligations.</p>",
		),
	},
	{
		Slug:    "professional-education",
		Name:    "Professional Education",
		Summary: "Accredited continuing-education seminars for practising professionals.",
		Description: template.HTML(
			"<p>Our seminar series keeps practitioners current on legislation and case law, " +
				"with accreditation recognised by the national bar association.</p>",
		),
	},
	{
		Slug:    "public-resources",
		Name:    "Public Resources",
		Summary: "Plain-language guides, articles and white papers, free for anyone to use.",
		Description: template.HTML(
			"<p>Everything we publish in the resources section is written in plain language, " +
				"reviewed by practising lawyers and free to reuse in community education.</p>",
		),
	},
}

// Catalog returns the full programs catalog in display order.
func Catalog() []models.Service {
	return catalog
}

func findService(slug string) *models.Service {
	for i := range catalog {
		if catalog[i].Slug == slug {
			return &catalog[i]
		}
	}
	return nil
}
