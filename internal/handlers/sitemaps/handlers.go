package sitemaps

import (
	"html/template"
	"net/http"
	"sort"

	"github.com/lexcentre/website/internal/models"
	"github.com/lexcentre/website/internal/utils"
)

// Serve the xml style, which is xsl
func (s *Service) SitemapStyleHandler(w http.ResponseWriter, r *http.Request) {

	// Get data from context
	data := utils.GetDataFromContext(r)

	data.XMLDeclarations = []template.HTML{
		template.HTML(`<?xml version="1.0" encoding="UTF-8"?>`),
	}

	s.ui.RenderHTML(w, r, "sitemap.xsl", data)
}

// Handle a sitemap part
func (s *Service) SitemapPartHandler(w http.ResponseWriter, r *http.Request) {

	partKey := r.PathValue("part")
	sitemap := s.buildSitemap(r.Context())

	part, ok := sitemap[partKey]
	if !ok {
		http.NotFound(w, r)
		return
	}

	// Get data from context and amend it with the sitemap data
	data := utils.GetDataFromContext(r)
	data.SitemapItems = part.Entries
	data.XMLDeclarations = []template.HTML{
		template.HTML(`<?xml version="1.0" encoding="UTF-8"?>`),
		template.HTML(`<?xml-stylesheet type="text/xsl" href="/sitemap.xsl"?>`),
	}

	s.ui.RenderHTML(w, r, "sitemap_items.xml", data)
}

// Handle the sitemap index
func (s *Service) SitemapIndexHandler(w http.ResponseWriter, r *http.Request) {

	// Get data from context
	data := utils.GetDataFromContext(r)

	for _, part := range s.buildSitemap(r.Context()) {
		data.SitemapItems = append(data.SitemapItems, &models.SitemapItem{
			Location:     part.Location,
			LastModified: part.LastModified,
		})
	}

	// Sort the parts so they appear in the template in order
	sort.Slice(data.SitemapItems, func(i, j int) bool {
		return data.SitemapItems[i].Location < data.SitemapItems[j].Location
	})

	data.XMLDeclarations = []template.HTML{
		template.HTML(`<?xml version="1.0" encoding="UTF-8"?>`),
		template.HTML(`<?xml-stylesheet type="text/xsl" href="/sitemap.xsl"?>`),
	}

	s.ui.RenderHTML(w, r, "sitemap_index.xml", data)
}
