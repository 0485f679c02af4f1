package sitemaps

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/lexcentre/website/internal/config"
	"github.com/lexcentre/website/internal/content"
)

type fakeFetcher struct {
	result string
	err    error
}

func (f *fakeFetcher) Fetch(ctx context.Context, query string, params content.Params, dest any) error {
	if f.err != nil {
		return f.err
	}
	if f.result == "" || f.result == "null" {
		return nil
	}
	return json.Unmarshal([]byte(f.result), dest)
}

func testService(fetcher content.Fetcher) *Service {
	cfg := &config.Config{Protocol: "https", Domain: "lexcentre.org"}
	return New(fetcher, nil, cfg)
}

func TestBuildSitemapFromStore(t *testing.T) {

	result := `{
		"guides": [{"slug": {"current": "tenant-rights"}, "publishedAt": "2025-03-10T09:00:00Z"}],
		"posts": [{"slug": {"current": "legal-literacy"}, "publishedAt": "2025-04-02T09:00:00Z"}],
		"news": [
			{"slug": {"current": "clinic-opens"}, "publishedAt": "2025-05-01T09:00:00Z"},
			{"slug": {"current": "late-news"}, "publishedAt": "2025-06-15T09:00:00Z"}
		],
		"whitePapers": [],
		"events": [{"slug": {"current": "seminar"}, "publishedAt": "2026-09-10T18:30:00Z"}]
	}`

	sitemap := testService(&fakeFetcher{result: result}).buildSitemap(context.Background())

	for _, key := range []string{"static", "guides", "articles", "news", "events"} {
		if _, ok := sitemap[key]; !ok {
			t.Errorf("missing sitemap part %q", key)
		}
	}

	// An empty section produces no part
	if _, ok := sitemap["white-papers"]; ok {
		t.Error("empty white papers section produced a part")
	}

	guides := sitemap["guides"]
	if len(guides.Entries) != 1 {
		t.Fatalf("got %d guide entries, want 1", len(guides.Entries))
	}
	wantLoc := "https://lexcentre.org/resources/guides/tenant-rights/"
	if guides.Entries[0].Location != wantLoc {
		t.Errorf("got location %q, want %q", guides.Entries[0].Location, wantLoc)
	}
	if guides.Entries[0].LastModified != "2025-03-10" {
		t.Errorf("got lastmod %q, want 2025-03-10", guides.Entries[0].LastModified)
	}

	// The part lastmod is the newest entry in the section
	if sitemap["news"].LastModified != "2025-06-15" {
		t.Errorf("got news part lastmod %q, want 2025-06-15", sitemap["news"].LastModified)
	}
}

func TestBuildSitemapStoreFailure(t *testing.T) {

	sitemap := testService(&fakeFetcher{err: errors.New("down")}).buildSitemap(context.Background())

	// The sitemap degrades to the static part alone
	if len(sitemap) != 1 {
		t.Fatalf("got %d parts, want just the static part", len(sitemap))
	}

	static, ok := sitemap["static"]
	if !ok {
		t.Fatal("missing the static part")
	}

	var locations []string
	for _, entry := range static.Entries {
		locations = append(locations, entry.Location)
	}
	joined := strings.Join(locations, " ")

	for _, route := range []string{"/about/", "/events/", "/resources/guides/", "/privacy/"} {
		if !strings.Contains(joined, "https://lexcentre.org"+route) {
			t.Errorf("static part missing route %q", route)
		}
	}

	// The program pages ride in the static part
	if !strings.Contains(joined, "/programs-and-initiatives/schools-programme/") {
		t.Error("static part missing a program page")
	}
}

func TestSectionPartSkipsEmptySlugs(t *testing.T) {

	service := testService(&fakeFetcher{})

	part := service.sectionPart("guides", "/resources/guides/", []sitemapDoc{
		{}, // no slug
	})

	if part != nil {
		t.Errorf("got part %+v, want nil for slugless entries", part)
	}
}
