package ui

import (
	"io"
	"net/http"
	"regexp"
	"sync"

	"github.com/gorilla/sessions"
	"github.com/lexcentre/website/internal/config"
	"github.com/lexcentre/website/internal/content"
	"github.com/lexcentre/website/internal/models"
	"github.com/tdewolff/minify"
	"github.com/tdewolff/minify/css"
	"github.com/tdewolff/minify/html"
	"github.com/tdewolff/minify/js"
	"github.com/tdewolff/minify/json"
	"github.com/tdewolff/minify/xml"
)

type Service interface {
	// Store flash message in a session
	StoreFlashMessage(w http.ResponseWriter, r *http.Request, m *models.FlashMessage)
	// Get the map containing the static files
	StaticFiles() models.StaticFiles
	// Get the map containing the plain text files
	TextFiles() models.TextFiles
	// Create new template data
	NewData(w http.ResponseWriter, r *http.Request) *models.TemplateData
	// Write JSON to response
	WriteJSON(w http.ResponseWriter, r *http.Request, data any)
	// Write HTML template to response
	RenderHTML(w http.ResponseWriter, r *http.Request, templateName string, data *models.TemplateData)
	// Write JSON error with a human readable reason to response
	JSONError(w http.ResponseWriter, r *http.Request, statusCode int, reason string)
	// Write HTML error page to response
	HTMLError(w http.ResponseWriter, r *http.Request, statusCode int, data *models.TemplateData)
	// ExecuteErrorTemplate executes error.html template
	ExecuteErrorTemplate(w io.Writer, status int, data *models.TemplateData) error
}

type service struct {
	templates   models.TemplateMap
	staticFiles models.StaticFiles
	textFiles   models.TextFiles
	store       sessions.Store
	fetcher     content.Fetcher
	config      *config.Config
}

var validJS = regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$")
var validXML = regexp.MustCompile("[/+]xml$")

var (
	uiInstance *service
	once       sync.Once
)

// Walk the embedded filesystem and parse the templates and statics.
func New(fetcher content.Fetcher, store sessions.Store, config *config.Config) Service {
	once.Do(func() {
		m := minify.New()
		m.AddFunc("text/css", css.Minify)
		m.AddFunc("text/html", html.Minify)
		m.AddFuncRegexp(validJS, js.Minify)
		m.AddFuncRegexp(validXML, xml.Minify)
		m.AddFunc("application/manifest+json", json.Minify)

		uiInstance = &service{
			templates:   parseTemplates(m),
			staticFiles: parseStaticFiles(m, "static"),
			textFiles:   parseTextFiles("text"),
			store:       store,
			fetcher:     fetcher,
			config:      config,
		}
	})

	return uiInstance
}

// Get the map containing the static files
func (s *service) StaticFiles() models.StaticFiles {
	return s.staticFiles
}

// Get the map containing the plain text files
func (s *service) TextFiles() models.TextFiles {
	return s.textFiles
}
