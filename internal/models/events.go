package models

import "time"

// EventStatus is the derived temporal state of an event,
// computed at render time and never stored
type EventStatus string

const (
	EventUpcoming EventStatus = "upcoming"
	EventPast     EventStatus = "past"
)

// Event is a seminar, webinar or course run by the centre
type Event struct {
	ID              string       `json:"_id,omitempty"`
	Title           string       `json:"title,omitempty"`
	Slug            Slug         `json:"slug,omitempty"`
	Excerpt         string       `json:"excerpt,omitempty"`
	Body            []Block      `json:"body,omitempty"`
	Date            *time.Time   `json:"date,omitempty"`
	EndDate         *time.Time   `json:"endDate,omitempty"`
	Location        string       `json:"location,omitempty"`
	Online          bool         `json:"online,omitempty"`
	RegistrationURL string       `json:"registrationUrl,omitempty"`
	Speakers        []TeamMember `json:"speakers,omitempty"`
	Featured        bool         `json:"featured,omitempty"`
	MainImage       *Image       `json:"mainImage,omitempty"`
	SEO             *SEO         `json:"seo,omitempty"`
}

// Status classifies the event relative to now.
// The boundary is inclusive, an event starting exactly now is upcoming.
func (e *Event) Status(now time.Time) EventStatus {
	if e.Date == nil {
		return EventPast
	}
	if e.Date.Before(now) {
		return EventPast
	}
	return EventUpcoming
}

// Venue is the human readable location line
func (e *Event) Venue() string {
	if e.Online {
		return "Online"
	}
	return e.Location
}
