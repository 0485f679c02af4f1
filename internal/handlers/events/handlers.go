package events

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/lexcentre/website/internal/content"
	"github.com/lexcentre/website/internal/models"
	"github.com/lexcentre/website/internal/structured"
	"github.com/lexcentre/website/internal/utils"
)

// Handle the events list, split into upcoming and past
func (s *Service) EventsHandler(w http.ResponseWriter, r *http.Request) {

	data := utils.GetDataFromContext(r)

	events := content.List(
		r.Context(), s.fetcher, content.AllEventsQuery, nil, content.FallbackEvents,
	)

	now := time.Now()
	for _, event := range events {
		switch event.Status(now) {
		case models.EventUpcoming:
			data.UpcomingEvents = append(data.UpcomingEvents, event)
		case models.EventPast:
			data.PastEvents = append(data.PastEvents, event)
		}
	}

	// Upcoming soonest first, featured events on top
	sort.SliceStable(data.UpcomingEvents, func(i, j int) bool {
		a, b := data.UpcomingEvents[i], data.UpcomingEvents[j]
		if a.Featured != b.Featured {
			return a.Featured
		}
		if a.Date == nil || b.Date == nil {
			return b.Date == nil
		}
		return a.Date.Before(*b.Date)
	})

	data.Title = fmt.Sprintf("Events — %s", data.Settings.SiteName)
	s.ui.RenderHTML(w, r, "events.html", data)
}

// Handle a single event by slug
func (s *Service) SingleEventHandler(w http.ResponseWriter, r *http.Request) {

	slug := r.PathValue("event")
	data := utils.GetDataFromContext(r)

	event, err := content.One[models.Event](
		r.Context(), s.fetcher, content.SingleEventQuery, content.Params{"slug": slug},
	)

	// A true not-found is never masked by fallback data
	if errors.Is(err, content.ErrNotFound) {
		s.ui.HTMLError(w, r, http.StatusNotFound, data)
		return
	}

	if err != nil {
		log.Printf("Failed to fetch the event '%s': %v", slug, err)
		s.ui.HTMLError(w, r, http.StatusInternalServerError, data)
		return
	}

	data.CurrentEvent = event
	data.BodyHTML = s.richtext.Render(event.Body)
	data.Title = fmt.Sprintf("%s — %s", event.Title, data.Settings.SiteName)
	data.MetaDescription = event.Excerpt
	if event.SEO != nil && event.SEO.MetaDescription != "" {
		data.MetaDescription = event.SEO.MetaDescription
	}

	pageURL := s.config.BaseURL() + "/events/" + slug + "/"
	data.StructuredData = append(data.StructuredData,
		structured.Script(structured.Event(event, pageURL, s.images.ImageURL(event.MainImage))),
		structured.Script(structured.Breadcrumb([]structured.Crumb{
			{Name: "Home", URL: s.config.BaseURL() + "/"},
			{Name: "Events", URL: s.config.BaseURL() + "/events/"},
			{Name: event.Title},
		})),
	)

	s.ui.RenderHTML(w, r, "event.html", data)
}
