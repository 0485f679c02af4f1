package content

import (
	"time"

	"github.com/gosimple/slug"
	"github.com/lexcentre/website/internal/models"
)

// Static example records substituted when the content store is
// unreachable or returns no results. They keep the list and landing
// pages non-empty during development and outages. Never used for
// single-record lookups.

func fallbackDoc(title, excerpt string, published time.Time, topics ...string) models.Document {
	return models.Document{
		ID:          "fallback-" + slug.Make(title),
		Title:       title,
		Slug:        models.Slug{Current: slug.Make(title)},
		Excerpt:     excerpt,
		Topics:      topics,
		PublishedAt: &published,
	}
}

var FallbackGuides = []models.Guide{
	{Document: fallbackDoc(
		"Understanding Your Rights as a Tenant",
		"A plain-language walkthrough of residential tenancy law, from signing a lease to ending one.",
		time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		"housing", "consumer-rights",
	)},
	{Document: fallbackDoc(
		"Small Claims Court, Step by Step",
		"How to prepare, file and present a small claim without a lawyer.",
		time.Date(2025, 1, 22, 9, 0, 0, 0, time.UTC),
		"courts", "self-representation",
	)},
	{Document: fallbackDoc(
		"Employment Contracts Explained",
		"What the standard clauses in an employment contract actually mean for you.",
		time.Date(2024, 11, 5, 9, 0, 0, 0, time.UTC),
		"employment",
	)},
}

var FallbackPosts = []models.Post{
	{Document: fallbackDoc(
		"Why Legal Literacy Belongs in Every Classroom",
		"Legal education is civic education. The case for teaching the law before people need it.",
		time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC),
		"education",
	)},
	{Document: fallbackDoc(
		"Five Questions to Ask Before Signing Anything",
		"A short checklist that prevents most contract disputes we see.",
		time.Date(2025, 2, 14, 9, 0, 0, 0, time.UTC),
		"consumer-rights",
	)},
}

var FallbackNews = []models.NewsArticle{
	{Document: fallbackDoc(
		"Centre Launches Free Legal Clinic Series",
		"Monthly walk-in clinics begin this spring in partnership with three community law offices.",
		time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
		"announcements",
	)},
	{Document: fallbackDoc(
		"New Partnership with the National Bar Association",
		"The partnership expands our continuing-education catalogue to practising solicitors.",
		time.Date(2025, 3, 18, 9, 0, 0, 0, time.UTC),
		"partnerships",
	)},
}

var FallbackWhitePapers = []models.WhitePaper{
	{
		Document: fallbackDoc(
			"Access to Justice in the Digital Age",
			"How online dispute resolution is reshaping access to the courts.",
			time.Date(2025, 1, 9, 9, 0, 0, 0, time.UTC),
			"research",
		),
		Abstract: "A survey of online dispute resolution programmes across four jurisdictions " +
			"and their measurable effect on self-represented litigants.",
	},
}

var FallbackEvents = []models.Event{
	{
		ID:       "fallback-intro-consumer-law",
		Title:    "Introduction to Consumer Law",
		Slug:     models.Slug{Current: "introduction-to-consumer-law"},
		Excerpt:  "A free evening seminar covering refunds, warranties and unfair terms.",
		Date:     timePtr(time.Now().AddDate(0, 1, 0)),
		Location: "LexCentre, Main Hall",
	},
	{
		ID:      "fallback-tenancy-webinar",
		Title:   "Tenancy Rights Webinar",
		Slug:    models.Slug{Current: "tenancy-rights-webinar"},
		Excerpt: "Live online session with Q&A on the new tenancy regulations.",
		Date:    timePtr(time.Now().AddDate(0, 2, 0)),
		Online:  true,
	},
}

var FallbackTeam = []models.TeamMember{
	{ID: "fallback-director", Name: "Jordan Mercer", Role: "Executive Director"},
	{ID: "fallback-education-lead", Name: "Priya Natarajan", Role: "Head of Education"},
}

var FallbackAdvisory = []models.TeamMember{
	{ID: "fallback-advisor", Name: "Prof. Elena Vasquez", Role: "Advisory Board Chair", AdvisoryBoard: true},
}

func timePtr(t time.Time) *time.Time { return &t }
