package ui

import (
	"log"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/lexcentre/website/internal/content"
	"github.com/lexcentre/website/internal/models"
	"github.com/lexcentre/website/internal/structured"
	"github.com/lexcentre/website/internal/utils"
)

// Creates new default data struct to be passed to the templates.
// Invoked once per request in a middleware and passed downstream
// as value to the request context.
func (s *service) NewData(w http.ResponseWriter, r *http.Request) *models.TemplateData {

	// The site settings singleton, absence is valid
	// and the hard-coded defaults below win
	settings := content.Maybe[models.SiteSettings](
		r.Context(), s.fetcher, content.SiteSettingsQuery, nil,
	)
	if settings == nil {
		settings = &models.SiteSettings{
			SiteName:     s.config.SiteName,
			Tagline:      s.config.SiteDescription,
			ContactEmail: s.config.ContactInbox,
		}
	}

	// Construct the data
	data := &models.TemplateData{
		StaticFiles:  s.staticFiles,
		Config:       s.config,
		Settings:     settings,
		Title:        settings.SiteName,
		CurrentURI:   r.RequestURI,
		CanonicalURL: utils.AbsoluteURL(utils.GetBaseURL(r, !s.config.Debug), r.URL.Path),
		CSRFField:    csrf.TemplateField(r),
	}

	// The site-wide organization document rides on every page
	data.StructuredData = append(data.StructuredData, structured.Script(
		structured.Organization(
			settings.SiteName,
			settings.Tagline,
			s.config.BaseURL(),
			"",
			settings.ContactEmail,
			settings.ContactPhone,
		),
	))

	// Check for flash cookie
	if _, err := r.Cookie(s.config.FlashSessionName); err != nil {
		return data
	}

	// Get any flash messages from session
	session, _ := s.store.Get(r, s.config.FlashSessionName)
	flashes := session.Flashes()

	var flashMessages []*models.FlashMessage
	for _, v := range flashes {
		if flash, ok := v.(*models.FlashMessage); ok && flash != nil {
			flashMessages = append(flashMessages, flash)
		}
	}

	// Clear the flash session created with s.store.Get
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		log.Printf("unable to clear/save the flash session; %v", err)
	}

	// Put flash messages to data
	data.FlashMessages = flashMessages
	return data
}
