package models

import (
	"html/template"
	"strings"
	"time"

	"github.com/lexcentre/website/internal/config"
)

// Flash message object to store to session for the next page
type FlashMessage struct {
	Message  string
	Category string
}

// Specific data for the error pages
type HTMLErrorData struct {
	Title   string
	Heading string
	Text    string
}

// StaticPage is a markdown-backed legal page (privacy, terms)
type StaticPage struct {
	Slug        string
	Title       string
	HTMLContent template.HTML
}

// Service is an entry in the programs-and-initiatives catalog
type Service struct {
	Slug        string
	Name        string
	Summary     string
	Description template.HTML
}

// Data struct to pass to templates
type TemplateData struct {
	StaticFiles     StaticFiles
	Config          *config.Config
	Settings        *SiteSettings
	Title           string
	MetaDescription string
	CurrentURI      string
	CanonicalURL    string
	FlashMessages   []*FlashMessage
	HTMLErrorData   *HTMLErrorData
	CSRFField       template.HTML
	XMLDeclarations []template.HTML
	SitemapItems    []*SitemapItem

	// Machine readable metadata, embedded verbatim in the head
	StructuredData []template.HTML

	// Page specific content
	Guides         []Guide
	Posts          []Post
	News           []NewsArticle
	WhitePapers    []WhitePaper
	UpcomingEvents []Event
	PastEvents     []Event
	Team           []TeamMember
	Advisory       []TeamMember
	Services       []Service
	Topics         []string
	SelectedTopic  string

	CurrentGuide      *Guide
	CurrentPost       *Post
	CurrentNews       *NewsArticle
	CurrentWhitePaper *WhitePaper
	CurrentEvent      *Event
	CurrentService    *Service
	CurrentPage       *StaticPage

	// Rendered rich-text body of the current record
	BodyHTML template.HTML
}

// Add version query string to file
func (td *TemplateData) AddVersion(path string) string {
	if fi, ok := td.StaticFiles[path]; ok {
		return path + "?v=" + fi.Etag
	}
	return path
}

// Split string helper function for templates
func (td *TemplateData) Split(s, sep string) []string {
	return strings.Split(s, sep)
}

// Get time now
func (td *TemplateData) Now() time.Time {
	return time.Now()
}
