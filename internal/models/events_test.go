package models

import (
	"testing"
	"time"
)

func TestEventStatus(t *testing.T) {

	now := time.Date(2026, time.March, 15, 18, 0, 0, 0, time.UTC)

	timePtr := func(t time.Time) *time.Time { return &t }

	tests := []struct {
		name     string
		date     *time.Time
		expected EventStatus
	}{
		{"no date", nil, EventPast},
		{"clearly past", timePtr(now.AddDate(0, -1, 0)), EventPast},
		{"a moment before now", timePtr(now.Add(-time.Microsecond)), EventPast},
		{"exactly now is upcoming", timePtr(now), EventUpcoming},
		{"a moment after now", timePtr(now.Add(time.Microsecond)), EventUpcoming},
		{"clearly upcoming", timePtr(now.AddDate(0, 1, 0)), EventUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := Event{Title: "Test", Date: tt.date}
			if got := event.Status(now); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEventVenue(t *testing.T) {

	tests := []struct {
		name     string
		event    Event
		expected string
	}{
		{"online event", Event{Online: true, Location: "City Hall"}, "Online"},
		{"in person event", Event{Location: "City Hall"}, "City Hall"},
		{"no location", Event{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.Venue(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
