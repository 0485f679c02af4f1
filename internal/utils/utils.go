package utils

import (
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/lexcentre/website/internal/models"
)

type contextKey struct {
	name string
}

// Universal context key to get the page data from context
var DataContextKey = contextKey{name: "data"}

// Favicons used in the website
var RootFavicons = []string{
	"/android-chrome-192x192.png",
	"/android-chrome-512x512.png",
	"/apple-touch-icon.png",
	"/favicon-16x16.png",
	"/favicon-32x32.png",
	"/favicon.ico",
	"/site.webmanifest",
}

// Get the template data from context
func GetDataFromContext(r *http.Request) *models.TemplateData {
	data, _ := r.Context().Value(DataContextKey).(*models.TemplateData)
	return data // nil if data not in context
}

// Serve a plain HTTP error with the standard status text
func HttpError(w http.ResponseWriter, code int) {
	http.Error(w, http.StatusText(code), code)
}

// Create base URL object (absolute path only)
func GetBaseURL(r *http.Request, forceHttps bool) *url.URL {
	// Determine scheme
	scheme := "http"
	if forceHttps || r.TLS != nil {
		scheme = "https"
	}

	return &url.URL{
		Scheme: scheme,
		Host:   r.Host,
		Path:   r.URL.Path,
	}
}

// Construct an absolute url given a base url and path
func AbsoluteURL(baseURL *url.URL, path string) string {
	u := *baseURL // Copy the URL
	u.Path = path
	return u.String()
}

// Validates a path
func ValidateFilePath(p string) error {
	if p == "" {
		return fmt.Errorf("no path supplied")
	}

	cleaned := path.Clean(p)
	if cleaned != p {
		return fmt.Errorf("invalid path '%s'", p)
	}

	// Never allow escaping the served roots
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("invalid path '%s'", p)
	}

	return nil
}

// First letter to uppercase
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
