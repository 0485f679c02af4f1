package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSend(t *testing.T) {

	email := &Email{
		From:    "no-reply@example.org",
		To:      []string{"reader@example.org"},
		Subject: "Welcome",
		HTML:    "<p>Hello</p>",
	}

	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{"accepted", http.StatusOK, false},
		{"created", http.StatusCreated, false},
		{"rejected", http.StatusUnprocessableEntity, true},
		{"server error", http.StatusInternalServerError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			var received Email
			server := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {

					if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
						t.Errorf("got auth header %q, want bearer key", got)
					}
					if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
						t.Errorf("failed to decode email payload; %v", err)
					}

					w.WriteHeader(tt.status)
				},
			))
			defer server.Close()

			client := NewWithEndpoint(server.URL, "test-key")
			err := client.Send(context.Background(), email)

			if gotErr := err != nil; gotErr != tt.wantErr {
				t.Fatalf("got error = %v, want error = %t", err, tt.wantErr)
			}

			if diff := cmp.Diff(*email, received); diff != "" {
				t.Errorf("payload mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSendTransportError(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {},
	))
	server.Close()

	client := NewWithEndpoint(server.URL, "test-key")
	if err := client.Send(context.Background(), &Email{}); err == nil {
		t.Error("got nil error, want transport error")
	}
}
