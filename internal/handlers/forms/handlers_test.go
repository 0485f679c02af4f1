package forms

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lexcentre/website/internal/config"
	"github.com/lexcentre/website/internal/mailer"
	"github.com/lexcentre/website/internal/models"
)

// fakeMailer counts deliveries and can fail from a given send onward
type fakeMailer struct {
	sent    []*mailer.Email
	failOn  int // 1-based index of the first send that fails, 0 never fails
	failErr error
}

func (f *fakeMailer) Send(ctx context.Context, email *mailer.Email) error {
	f.sent = append(f.sent, email)
	if f.failOn > 0 && len(f.sent) >= f.failOn {
		return f.failErr
	}
	return nil
}

// fakeUI records the JSON responses the handler produces
type fakeUI struct {
	status int
	reason string
	body   any
}

func (f *fakeUI) StoreFlashMessage(w http.ResponseWriter, r *http.Request, m *models.FlashMessage) {}
func (f *fakeUI) StaticFiles() models.StaticFiles                                                 { return nil }
func (f *fakeUI) TextFiles() models.TextFiles                                                     { return nil }
func (f *fakeUI) NewData(w http.ResponseWriter, r *http.Request) *models.TemplateData             { return nil }

func (f *fakeUI) WriteJSON(w http.ResponseWriter, r *http.Request, data any) {
	f.status = http.StatusOK
	f.body = data
}

func (f *fakeUI) RenderHTML(w http.ResponseWriter, r *http.Request, name string, data *models.TemplateData) {
}

func (f *fakeUI) JSONError(w http.ResponseWriter, r *http.Request, statusCode int, reason string) {
	f.status = statusCode
	f.reason = reason
}

func (f *fakeUI) HTMLError(w http.ResponseWriter, r *http.Request, statusCode int, data *models.TemplateData) {
	f.status = statusCode
}

func (f *fakeUI) ExecuteErrorTemplate(w io.Writer, status int, data *models.TemplateData) error {
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		EmailFrom:       "no-reply@example.org",
		ContactInbox:    "info@example.org",
		NewsletterInbox: "news@example.org",
	}
}

func jsonRequest(t *testing.T, target string, payload any) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload; %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestContactHandler(t *testing.T) {

	valid := models.ContactSubmission{
		Name:        "Jordan Blake",
		Email:       "jordan@example.org",
		InquiryType: "general",
		Message:     "Hello",
	}

	invalid := valid
	invalid.Message = ""

	tests := []struct {
		name       string
		payload    any
		mailer     *fakeMailer
		wantStatus int
		wantReason string
		wantSends  int
	}{
		{
			"valid submission sends two emails",
			valid,
			&fakeMailer{},
			http.StatusOK,
			"",
			2,
		},
		{
			"invalid submission sends nothing",
			invalid,
			&fakeMailer{},
			http.StatusBadRequest,
			"Message is required",
			0,
		},
		{
			"notice failure stops the confirmation",
			valid,
			&fakeMailer{failOn: 1, failErr: errors.New("smtp down")},
			http.StatusInternalServerError,
			"We could not send your message. Please try again.",
			1,
		},
		{
			"confirmation failure is a server error",
			valid,
			&fakeMailer{failOn: 2, failErr: errors.New("smtp down")},
			http.StatusInternalServerError,
			"We could not send your message. Please try again.",
			2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &fakeUI{}
			service := New(tt.mailer, ui, testConfig())

			req := jsonRequest(t, "/api/contact", tt.payload)
			service.ContactHandler(httptest.NewRecorder(), req)

			if ui.status != tt.wantStatus {
				t.Errorf("got status %d, want %d", ui.status, tt.wantStatus)
			}
			if tt.wantReason != "" && ui.reason != tt.wantReason {
				t.Errorf("got reason %q, want %q", ui.reason, tt.wantReason)
			}
			if len(tt.mailer.sent) != tt.wantSends {
				t.Errorf("got %d emails sent, want %d", len(tt.mailer.sent), tt.wantSends)
			}
		})
	}
}

func TestContactHandlerEmailRouting(t *testing.T) {

	m := &fakeMailer{}
	ui := &fakeUI{}
	service := New(m, ui, testConfig())

	payload := models.ContactSubmission{
		Name:        "Jordan Blake",
		Email:       "jordan@example.org",
		InquiryType: "media",
		Message:     "Interview request",
	}

	req := jsonRequest(t, "/api/contact", payload)
	service.ContactHandler(httptest.NewRecorder(), req)

	if len(m.sent) != 2 {
		t.Fatalf("got %d emails sent, want 2", len(m.sent))
	}

	notice, confirmation := m.sent[0], m.sent[1]

	if notice.To[0] != "info@example.org" {
		t.Errorf("notice went to %q, want the contact inbox", notice.To[0])
	}
	if notice.ReplyTo != "jordan@example.org" {
		t.Errorf("notice reply-to is %q, want the submitter", notice.ReplyTo)
	}
	if confirmation.To[0] != "jordan@example.org" {
		t.Errorf("confirmation went to %q, want the submitter", confirmation.To[0])
	}
}

func TestContactHandlerMalformedBody(t *testing.T) {

	m := &fakeMailer{}
	ui := &fakeUI{}
	service := New(m, ui, testConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{broken"))
	req.Header.Set("Content-Type", "application/json")
	service.ContactHandler(httptest.NewRecorder(), req)

	if ui.status != http.StatusBadRequest {
		t.Errorf("got status %d, want %d", ui.status, http.StatusBadRequest)
	}
	if len(m.sent) != 0 {
		t.Errorf("got %d emails sent, want 0", len(m.sent))
	}
}

func TestNewsletterHandler(t *testing.T) {

	tests := []struct {
		name       string
		payload    any
		mailer     *fakeMailer
		wantStatus int
		wantReason string
		wantSends  int
	}{
		{
			"valid signup sends two emails",
			models.NewsletterSubmission{Email: "reader@example.org"},
			&fakeMailer{},
			http.StatusOK,
			"",
			2,
		},
		{
			"invalid address sends nothing",
			models.NewsletterSubmission{Email: "not-an-address"},
			&fakeMailer{},
			http.StatusBadRequest,
			"Email address is not valid",
			0,
		},
		{
			"delivery failure is a server error",
			models.NewsletterSubmission{Email: "reader@example.org"},
			&fakeMailer{failOn: 1, failErr: errors.New("smtp down")},
			http.StatusInternalServerError,
			"We could not sign you up. Please try again.",
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &fakeUI{}
			service := New(tt.mailer, ui, testConfig())

			req := jsonRequest(t, "/api/newsletter", tt.payload)
			service.NewsletterHandler(httptest.NewRecorder(), req)

			if ui.status != tt.wantStatus {
				t.Errorf("got status %d, want %d", ui.status, tt.wantStatus)
			}
			if tt.wantReason != "" && ui.reason != tt.wantReason {
				t.Errorf("got reason %q, want %q", ui.reason, tt.wantReason)
			}
			if len(tt.mailer.sent) != tt.wantSends {
				t.Errorf("got %d emails sent, want %d", len(tt.mailer.sent), tt.wantSends)
			}
		})
	}
}
