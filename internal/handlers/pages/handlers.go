package pages

import (
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/lexcentre/website/internal/content"
	"github.com/lexcentre/website/internal/markdown"
	"github.com/lexcentre/website/internal/models"
	"github.com/lexcentre/website/internal/structured"
	"github.com/lexcentre/website/internal/utils"
	"github.com/lexcentre/website/web"
	"golang.org/x/sync/errgroup"
)

// Handle the Home page
func (s *Service) HomeHandler(w http.ResponseWriter, r *http.Request) {

	// Generate template data
	data := utils.GetDataFromContext(r)

	// The three content needs share no data dependency,
	// issue them concurrently and join
	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		data.Guides = content.List(
			ctx, s.fetcher, content.RecentGuidesQuery, nil, content.FallbackGuides,
		)
		return nil
	})

	g.Go(func() error {
		data.News = content.List(
			ctx, s.fetcher, content.RecentNewsQuery, nil, content.FallbackNews,
		)
		return nil
	})

	g.Go(func() error {
		data.UpcomingEvents = content.List(
			ctx, s.fetcher, content.UpcomingEventsQuery, nil, content.FallbackEvents,
		)
		return nil
	})

	// The loaders recover failures internally, nothing to check
	_ = g.Wait()

	data.MetaDescription = data.Settings.Tagline
	s.ui.RenderHTML(w, r, "home.html", data)
}

// Handle the About page
func (s *Service) AboutHandler(w http.ResponseWriter, r *http.Request) {

	data := utils.GetDataFromContext(r)

	// Team and advisory board are independent reads
	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		data.Team = content.List(
			ctx, s.fetcher, content.TeamQuery, nil, content.FallbackTeam,
		)
		return nil
	})

	g.Go(func() error {
		data.Advisory = content.List(
			ctx, s.fetcher, content.AdvisoryBoardQuery, nil, content.FallbackAdvisory,
		)
		return nil
	})

	_ = g.Wait()

	data.Title = fmt.Sprintf("About — %s", data.Settings.SiteName)
	s.ui.RenderHTML(w, r, "about.html", data)
}

// Handle the Contact page
func (s *Service) ContactHandler(w http.ResponseWriter, r *http.Request) {

	data := utils.GetDataFromContext(r)
	data.Title = fmt.Sprintf("Contact — %s", data.Settings.SiteName)

	s.ui.RenderHTML(w, r, "contact.html", data)
}

// Handle the programs and initiatives landing page
func (s *Service) ProgramsHandler(w http.ResponseWriter, r *http.Request) {

	data := utils.GetDataFromContext(r)
	data.Services = catalog
	data.Title = fmt.Sprintf("Programs & Initiatives — %s", data.Settings.SiteName)

	s.ui.RenderHTML(w, r, "programs.html", data)
}

// Handle a single program page
func (s *Service) SingleProgramHandler(w http.ResponseWriter, r *http.Request) {

	service := findService(r.PathValue("slug"))
	if service == nil {
		http.NotFound(w, r)
		return
	}

	data := utils.GetDataFromContext(r)
	data.CurrentService = service
	data.Title = fmt.Sprintf("%s — %s", service.Name, data.Settings.SiteName)
	data.MetaDescription = service.Summary

	pageURL := s.config.BaseURL() + "/programs-and-initiatives/" + service.Slug + "/"
	data.StructuredData = append(data.StructuredData,
		structured.Script(structured.Service(service, pageURL, data.Settings.SiteName)),
		structured.Script(structured.Breadcrumb([]structured.Crumb{
			{Name: "Home", URL: s.config.BaseURL() + "/"},
			{Name: "Programs & Initiatives", URL: s.config.BaseURL() + "/programs-and-initiatives/"},
			{Name: service.Name},
		})),
	)

	s.ui.RenderHTML(w, r, "program.html", data)
}

// Handle the markdown-backed legal pages (privacy, terms)
func (s *Service) LegalPageHandler(w http.ResponseWriter, r *http.Request) {

	// The route is registered per page, the slug is the path itself
	slug := strings.Trim(r.URL.Path, "/")
	if err := utils.ValidateFilePath(slug); err != nil {
		http.NotFound(w, r)
		return
	}

	source, err := fs.ReadFile(web.Files, "content/"+slug+".md")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	html, err := markdown.ToHTML(source)
	if err != nil {
		utils.HttpError(w, http.StatusInternalServerError)
		return
	}

	data := utils.GetDataFromContext(r)
	data.CurrentPage = &models.StaticPage{
		Slug:        slug,
		Title:       utils.Capitalize(slug),
		HTMLContent: html,
	}
	data.Title = fmt.Sprintf("%s — %s", data.CurrentPage.Title, data.Settings.SiteName)

	s.ui.RenderHTML(w, r, "page.html", data)
}
