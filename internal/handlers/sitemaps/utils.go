package sitemaps

import (
	"context"
	"time"

	"github.com/lexcentre/website/internal/content"
	"github.com/lexcentre/website/internal/handlers/pages"
	"github.com/lexcentre/website/internal/models"
)

const lastModLayout = "2006-01-02"

// A slug and timestamp pair as returned by the sitemap query
type sitemapDoc struct {
	Slug        models.Slug `json:"slug"`
	PublishedAt *time.Time  `json:"publishedAt"`
}

type sitemapDocs struct {
	Guides      []sitemapDoc `json:"guides"`
	Posts       []sitemapDoc `json:"posts"`
	News        []sitemapDoc `json:"news"`
	WhitePapers []sitemapDoc `json:"whitePapers"`
	Events      []sitemapDoc `json:"events"`
}

// The always-present routes. When the store is unreachable the
// sitemap degrades to this part alone, it never errors out.
var staticRoutes = []string{
	"/",
	"/about/",
	"/contact/",
	"/programs-and-initiatives/",
	"/events/",
	"/news/",
	"/resources/",
	"/resources/guides/",
	"/resources/articles/",
	"/resources/white-papers/",
	"/privacy/",
	"/terms/",
}

// Assemble the full sitemap, one part per content section
func (s *Service) buildSitemap(ctx context.Context) models.SitemapIndex {

	sitemap := models.SitemapIndex{
		"static": s.staticPart(),
	}

	// A nil result means the store failed, serve the static part alone
	docs := content.Maybe[sitemapDocs](ctx, s.fetcher, content.SitemapQuery, nil)
	if docs == nil {
		return sitemap
	}

	sections := []struct {
		key    string
		prefix string
		docs   []sitemapDoc
	}{
		{"guides", "/resources/guides/", docs.Guides},
		{"articles", "/resources/articles/", docs.Posts},
		{"news", "/news/", docs.News},
		{"white-papers", "/resources/white-papers/", docs.WhitePapers},
		{"events", "/events/", docs.Events},
	}

	for _, section := range sections {
		if part := s.sectionPart(section.key, section.prefix, section.docs); part != nil {
			sitemap[section.key] = *part
		}
	}

	return sitemap
}

func (s *Service) staticPart() models.SitemapPart {

	base := s.config.BaseURL()
	today := time.Now().UTC().Format(lastModLayout)

	var entries []*models.SitemapItem
	for _, route := range staticRoutes {
		entries = append(entries, &models.SitemapItem{Location: base + route})
	}
	for _, program := range pages.Catalog() {
		entries = append(entries, &models.SitemapItem{
			Location: base + "/programs-and-initiatives/" + program.Slug + "/",
		})
	}

	return models.SitemapPart{
		Entries:      entries,
		Location:     base + "/sitemap/static/part.xml",
		LastModified: today,
	}
}

func (s *Service) sectionPart(key, prefix string, docs []sitemapDoc) *models.SitemapPart {

	if len(docs) == 0 {
		return nil
	}

	base := s.config.BaseURL()
	var latest time.Time
	var entries []*models.SitemapItem

	for _, doc := range docs {
		if doc.Slug.Current == "" {
			continue
		}

		item := &models.SitemapItem{Location: base + prefix + doc.Slug.Current + "/"}
		if doc.PublishedAt != nil {
			item.LastModified = doc.PublishedAt.UTC().Format(lastModLayout)
			if doc.PublishedAt.After(latest) {
				latest = *doc.PublishedAt
			}
		}
		entries = append(entries, item)
	}

	if len(entries) == 0 {
		return nil
	}

	part := &models.SitemapPart{
		Entries:  entries,
		Location: base + "/sitemap/" + key + "/part.xml",
	}
	if !latest.IsZero() {
		part.LastModified = latest.UTC().Format(lastModLayout)
	}

	return part
}
