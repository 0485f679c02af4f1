package middlewares

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/csrf"
	"github.com/klauspost/compress/gzhttp"
	"github.com/lexcentre/website/internal/config"
	"github.com/lexcentre/website/internal/models"
	"github.com/lexcentre/website/internal/ui"
	"github.com/lexcentre/website/internal/utils"
)

type Middleware func(http.Handler) http.Handler

type Service struct {
	ui     ui.Service
	config *config.Config
}

func New(ui ui.Service, config *config.Config) *Service {
	return &Service{
		ui:     ui,
		config: config,
	}
}

// ApplyToAll chains middlewares that apply to all requests,
// the first one listed is the outermost
func (s *Service) ApplyToAll(mws ...Middleware) Middleware {
	return func(next http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			next = mws[i](next)
		}
		return next
	}
}

// Generate the template data and put it in context
func (s *Service) LoadData(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		// Static files don't need template data
		if isStatic(r) {
			next.ServeHTTP(w, r)
			return
		}

		// Generate the default data and store it to context
		data := s.ui.NewData(w, r)
		ctx := context.WithValue(r.Context(), utils.DataContextKey, data)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Close the body if POST request
func (s *Service) CloseBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Close request body for POST methods to prevent resource leaks
		if r.Method == http.MethodPost {
			defer r.Body.Close()
		}
		next.ServeHTTP(w, r)
	})
}

// Do not crash the app on panic, serve 500 error to the client
func (s *Service) RecoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// If in production recover panic
		if !s.config.Debug {
			defer func() {
				if err := recover(); err != nil {
					// Log the panic with stack trace
					log.Printf("Panic in %s %s: %#v", r.Method, r.URL.Path, err)

					// Return 500 to client
					http.Error(w, "Something went wrong", http.StatusInternalServerError)
				}
			}()
		}

		next.ServeHTTP(w, r)
	})
}

// Log the request method, path and duration
func (s *Service) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		// Don't log the static noise
		if isStatic(r) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// Add security headers to request
func (s *Service) AddHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		// Prevent MIME type sniffing
		w.Header().Set("X-Content-Type-Options", "nosniff")

		// XSS Protection
		w.Header().Set("X-XSS-Protection", "1; mode=block")

		// Prevent clickjacking
		w.Header().Set("X-Frame-Options", "SAMEORIGIN")

		// HSTS (HTTPS only)
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")

		next.ServeHTTP(w, r)
	})
}

// Redirect WWW to non-WWW
func (s *Service) WWWRedirect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Check for 'www.' prefix
		if !strings.HasPrefix(r.Host, "www.") {
			next.ServeHTTP(w, r)
			return
		}

		// Clone the URL
		u := *r.URL

		// Modify the host
		u.Host = strings.TrimPrefix(r.Host, "www.")

		// Modify the scheme
		if !s.config.Debug {
			u.Scheme = "https"
		}

		// Redirect
		http.Redirect(w, r, u.String(), http.StatusMovedPermanently)
	})
}

// Create CSRF middlware with added plain text option for local development
func (s *Service) CsrfProtection(next http.Handler) http.Handler {

	// Create the csrf middleware as per the gorilla/csrf documentation
	csrfMiddleware := csrf.Protect(
		s.config.CsrfKey.Bytes,
		csrf.Secure(!s.config.Debug),
		csrf.Path("/"),
	)

	// Return the handler function
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		// Static files don't need CSRF protection
		if isStatic(r) {
			next.ServeHTTP(w, r)
			return
		}

		// If debug set plain text (HTTP) schema
		if s.config.Debug {
			r = csrf.PlaintextHTTPRequest(r)
		}

		// Call the pre-created CSRF middleware
		csrfMiddleware(next).ServeHTTP(w, r)
	})
}

// Compress provides gzip compression to non-static pages
func (s *Service) Compress(next http.Handler) http.Handler {

	// Create the gzip handler
	gzipHandler := gzhttp.GzipHandler(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Static files are compressed on startup
		if isStatic(r) {
			next.ServeHTTP(w, r)
			return
		}

		gzipHandler.ServeHTTP(w, r)
	})
}

// PublicCache marks a response publicly cacheable for a day
func (s *Service) PublicCache(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=86400")
		next(w, r)
	}
}

// Record the status code and body and serves rich errors if the response is error
func (s *Service) HandleErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		// Create our custom response recorder
		recorder := NewResponseRecorder(w)

		// Defer the final response write until the function exits.
		// This ensures that either the original response or the error response is written.
		defer recorder.flush()

		// Call the next handler in the chain
		next.ServeHTTP(recorder, r)

		// We don't care if this is not an error
		if recorder.status < 400 {
			return
		}

		// The JSON endpoints craft their own error bodies
		if strings.HasPrefix(r.URL.Path, "/api/") {
			return
		}

		// This is an error
		// Clear any previously buffered body
		recorder.body.Reset()

		// Client probably does not want HTML, serve JSON error
		acceptHeader := r.Header.Get("Accept")
		if !strings.Contains(acceptHeader, "text/html") {
			s.ui.JSONError(recorder, r, recorder.status, "")
			return
		}

		// Client prefers HTML, render the HTML error template
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		// Default data
		data := utils.GetDataFromContext(r)
		if data == nil {
			data = &models.TemplateData{Config: s.config}
		}

		// Serve rich HTML error
		if err := s.ui.ExecuteErrorTemplate(recorder, recorder.status, data); err != nil {
			log.Printf("Failed to execute error template on URI '%s': %v", r.RequestURI, err)
		}
	})
}
