package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClientFetch(t *testing.T) {

	type record struct {
		Title string `json:"title"`
	}

	tests := []struct {
		name      string
		status    int
		response  string
		query     string
		params    Params
		wantErr   bool
		wantQuery string
		wantParam string
		expected  *record
	}{
		{
			name:      "successful fetch",
			status:    http.StatusOK,
			response:  `{"result": {"title": "Foo"}}`,
			query:     `*[_type == "guide"][0]`,
			wantQuery: `*[_type == "guide"][0]`,
			expected:  &record{Title: "Foo"},
		},
		{
			name:      "params are json encoded",
			status:    http.StatusOK,
			response:  `{"result": {"title": "Bar"}}`,
			query:     `*[slug.current == $slug][0]`,
			params:    Params{"slug": "tenant-rights"},
			wantQuery: `*[slug.current == $slug][0]`,
			wantParam: `"tenant-rights"`,
			expected:  &record{Title: "Bar"},
		},
		{
			name:     "null result leaves dest untouched",
			status:   http.StatusOK,
			response: `{"result": null}`,
			query:    `*[slug.current == "none"][0]`,
			expected: nil,
		},
		{
			name:     "store query error",
			status:   http.StatusBadRequest,
			response: `{"error": {"description": "expected ']'", "type": "queryParseError"}}`,
			query:    `*[broken`,
			wantErr:  true,
		},
		{
			name:     "unexpected status",
			status:   http.StatusBadGateway,
			response: `upstream unavailable`,
			query:    `*[_type == "guide"]`,
			wantErr:  true,
		},
		{
			name:     "malformed envelope",
			status:   http.StatusOK,
			response: `not json`,
			query:    `*[_type == "guide"]`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			server := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {

					if got := r.URL.Query().Get("query"); tt.wantQuery != "" && got != tt.wantQuery {
						t.Errorf("got query %q, want %q", got, tt.wantQuery)
					}
					if tt.wantParam != "" {
						if got := r.URL.Query().Get("$slug"); got != tt.wantParam {
							t.Errorf("got param %q, want %q", got, tt.wantParam)
						}
					}
					if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
						t.Errorf("got auth header %q, want bearer token", got)
					}

					w.WriteHeader(tt.status)
					w.Write([]byte(tt.response))
				},
			))
			defer server.Close()

			client := NewWithBaseURL(server.URL, "test-token")

			var dest *record
			err := client.Fetch(context.Background(), tt.query, tt.params, &dest)

			if gotErr := err != nil; gotErr != tt.wantErr {
				t.Fatalf("got error = %v, want error = %t", err, tt.wantErr)
			}

			if !tt.wantErr {
				if diff := cmp.Diff(tt.expected, dest); diff != "" {
					t.Errorf("result mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestClientFetchTransportError(t *testing.T) {

	// Point at a closed server to force a transport failure
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {},
	))
	server.Close()

	client := NewWithBaseURL(server.URL, "")

	var dest any
	if err := client.Fetch(context.Background(), "*", nil, &dest); err == nil {
		t.Error("got nil error, want transport error")
	}
}
