package news

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lexcentre/website/internal/config"
	"github.com/lexcentre/website/internal/content"
	"github.com/lexcentre/website/internal/models"
	"github.com/lexcentre/website/internal/richtext"
	"github.com/lexcentre/website/internal/utils"
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

type fakeUI struct {
	template string
	status   int
	data     *models.TemplateData
}

func (f *fakeUI) StoreFlashMessage(w http.ResponseWriter, r *http.Request, m *models.FlashMessage) {}
func (f *fakeUI) StaticFiles() models.StaticFiles                                                 { return nil }
func (f *fakeUI) TextFiles() models.TextFiles                                                     { return nil }
func (f *fakeUI) NewData(w http.ResponseWriter, r *http.Request) *models.TemplateData             { return nil }
func (f *fakeUI) WriteJSON(w http.ResponseWriter, r *http.Request, data any)                      {}

func (f *fakeUI) RenderHTML(w http.ResponseWriter, r *http.Request, name string, data *models.TemplateData) {
	f.template = name
	f.status = http.StatusOK
	f.data = data
}

func (f *fakeUI) JSONError(w http.ResponseWriter, r *http.Request, statusCode int, reason string) {
	f.status = statusCode
}

func (f *fakeUI) HTMLError(w http.ResponseWriter, r *http.Request, statusCode int, data *models.TemplateData) {
	f.status = statusCode
}

func (f *fakeUI) ExecuteErrorTemplate(w io.Writer, status int, data *models.TemplateData) error {
	return nil
}

const newsResult = `[
	{"_id": "n1", "title": "Clinic Opens", "slug": {"current": "clinic-opens"}, "topics": ["announcements", "clinics"]},
	{"_id": "n2", "title": "New Partnership", "slug": {"current": "new-partnership"}, "topics": ["partnerships"]},
	{"_id": "n3", "title": "Annual Report", "slug": {"current": "annual-report"}, "topics": ["announcements"]}
]`

func testService(fetcher content.Fetcher, ui *fakeUI) *Service {
	cfg := &config.Config{Protocol: "https", Domain: "lexcentre.org"}
	images := content.NewImageResolver("abc123", "production", 800)
	return New(fetcher, ui, richtext.New(images), images, cfg)
}

func requestWithData(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	data := &models.TemplateData{
		Settings: &models.SiteSettings{SiteName: "LexCentre"},
	}
	ctx := context.WithValue(req.Context(), utils.DataContextKey, data)
	return req.WithContext(ctx)
}

func TestNewsHandler(t *testing.T) {

	tests := []struct {
		name          string
		target        string
		wantTitles    []string
		wantTopics    []string
		wantSelection string
	}{
		{
			"unfiltered list with sorted facets",
			"/news/",
			[]string{"Clinic Opens", "New Partnership", "Annual Report"},
			[]string{"announcements", "clinics", "partnerships"},
			"",
		},
		{
			"topic filter narrows the list",
			"/news/?topic=announcements",
			[]string{"Clinic Opens", "Annual Report"},
			[]string{"announcements", "clinics", "partnerships"},
			"announcements",
		},
		{
			"unknown topic matches nothing",
			"/news/?topic=nonexistent",
			nil,
			[]string{"announcements", "clinics", "partnerships"},
			"nonexistent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &fakeUI{}
			service := testService(&fakeFetcher{result: newsResult}, ui)

			service.NewsHandler(httptest.NewRecorder(), requestWithData(tt.target))

			if ui.template != "news.html" {
				t.Fatalf("got template %q, want news.html", ui.template)
			}

			var titles []string
			for _, article := range ui.data.News {
				titles = append(titles, article.Title)
			}

			if diff := cmp.Diff(tt.wantTitles, titles); diff != "" {
				t.Errorf("articles mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantTopics, ui.data.Topics); diff != "" {
				t.Errorf("topics mismatch (-want +got):\n%s", diff)
			}
			if ui.data.SelectedTopic != tt.wantSelection {
				t.Errorf("got selected topic %q, want %q", ui.data.SelectedTopic, tt.wantSelection)
			}
		})
	}
}

func TestSingleNewsHandlerNotFound(t *testing.T) {

	ui := &fakeUI{}
	service := testService(&fakeFetcher{result: "null"}, ui)

	req := requestWithData("/news/nope/")
	req.SetPathValue("article", "nope")
	service.SingleNewsHandler(httptest.NewRecorder(), req)

	if ui.status != http.StatusNotFound {
		t.Errorf("got status %d, want %d", ui.status, http.StatusNotFound)
	}
}
