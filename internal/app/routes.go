package app

import (
	"log"
	"net/http"

	"github.com/lexcentre/website/internal/utils"
)

// RegisterRoutes registers routes and
// assigns custom handler to the HTTP server
func (a *App) RegisterRoutes() *App {
	mux := http.NewServeMux()

	// Home
	mux.HandleFunc("GET /{$}", a.pages.HomeHandler)

	// Institutional pages
	mux.HandleFunc("GET /about/{$}", a.pages.AboutHandler)
	mux.HandleFunc("GET /contact/{$}", a.pages.ContactHandler)
	mux.HandleFunc("GET /programs-and-initiatives/{$}", a.pages.ProgramsHandler)
	mux.HandleFunc("GET /programs-and-initiatives/{slug}/{$}", a.pages.SingleProgramHandler)

	// Markdown-backed legal pages
	mux.HandleFunc("GET /privacy/{$}", a.pages.LegalPageHandler)
	mux.HandleFunc("GET /terms/{$}", a.pages.LegalPageHandler)

	// Events
	mux.HandleFunc("GET /events/{$}", a.events.EventsHandler)
	mux.HandleFunc("GET /events/{event}/{$}", a.events.SingleEventHandler)

	// News
	mux.HandleFunc("GET /news/{$}", a.news.NewsHandler)
	mux.HandleFunc("GET /news/{article}/{$}", a.news.SingleNewsHandler)

	// Resources
	mux.HandleFunc("GET /resources/{$}", a.resources.ResourcesHandler)
	mux.HandleFunc("GET /resources/guides/{$}", a.resources.GuidesHandler)
	mux.HandleFunc("GET /resources/guides/{guide}/{$}", a.resources.SingleGuideHandler)
	mux.HandleFunc("GET /resources/articles/{$}", a.resources.ArticlesHandler)
	mux.HandleFunc("GET /resources/articles/{article}/{$}", a.resources.SingleArticleHandler)
	mux.HandleFunc("GET /resources/white-papers/{$}", a.resources.WhitePapersHandler)
	mux.HandleFunc("GET /resources/white-papers/{paper}/{$}", a.resources.SingleWhitePaperHandler)

	// Form submissions
	mux.HandleFunc("POST /api/contact", a.forms.ContactHandler)
	mux.HandleFunc("POST /api/newsletter", a.forms.NewsletterHandler)

	// RSS feed
	mux.HandleFunc("GET /feed.xml", a.mw.PublicCache(a.feeds.FeedHandler))

	// Sitemaps
	mux.HandleFunc("GET /sitemap.xsl", a.mw.PublicCache(a.sitemaps.SitemapStyleHandler))
	mux.HandleFunc("GET /sitemap/{part}/part.xml", a.mw.PublicCache(a.sitemaps.SitemapPartHandler))
	mux.HandleFunc("GET /sitemap.xml", a.mw.PublicCache(a.sitemaps.SitemapIndexHandler))

	// The rest
	mux.HandleFunc("GET /health/{$}", a.misc.HealthHandler)
	mux.HandleFunc("GET /static/", a.misc.StaticHandler)
	mux.HandleFunc("GET /robots.txt", a.mw.PublicCache(a.misc.TextHandler))

	// Register favicons serving from root
	for _, favicon := range utils.RootFavicons {
		mux.HandleFunc("GET "+favicon, a.misc.StaticHandler)
	}

	// Simple health check
	mux.HandleFunc("GET /healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Robots-Tag", "noindex")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Printf("Failed to write response on '%s'; %v", r.URL.Path, err)
		}
	})

	// Chain middlewares that apply to all requests.
	// The order is important.
	// Use this custom handler as HTTP server handler
	a.server.Handler = a.mw.ApplyToAll(
		a.mw.RecoverPanic,
		a.mw.CloseBody,
		a.mw.WWWRedirect,
		a.mw.Logging,
		a.mw.CsrfProtection,
		a.mw.LoadData,
		a.mw.AddHeaders,
		a.mw.Compress,
		a.mw.HandleErrors,
	)(mux)

	return a
}
