package forms

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/lexcentre/website/internal/mailer"
	"github.com/lexcentre/website/internal/models"
)

// Each submission is independent and stateless. Nothing is persisted,
// nothing is retried, repeat submissions are not deduplicated.

// Handle a contact form submission
func (s *Service) ContactHandler(w http.ResponseWriter, r *http.Request) {

	var payload models.ContactSubmission
	isForm := !wantsJSON(r)

	if err := decodePayload(r, isForm, &payload); err != nil {
		s.respondError(w, r, isForm, http.StatusBadRequest, "Malformed request body")
		return
	}

	if isForm {
		payload = models.ContactSubmission{
			Name:         r.PostFormValue("name"),
			Email:        r.PostFormValue("email"),
			Organization: r.PostFormValue("organization"),
			InquiryType:  r.PostFormValue("inquiryType"),
			Message:      r.PostFormValue("message"),
		}
	}

	if reason := payload.Validate(); reason != "" {
		s.respondError(w, r, isForm, http.StatusBadRequest, reason)
		return
	}

	// Notify the internal inbox first, then confirm to the submitter.
	// Either failure is a server error, never masked as success.
	err := s.mailer.Send(r.Context(), contactNotice(s.config.EmailFrom, s.config.ContactInbox, &payload))
	if err == nil {
		err = s.mailer.Send(r.Context(), contactConfirmation(s.config.EmailFrom, &payload))
	}

	if err != nil {
		log.Printf("Failed to deliver contact submission: %v", err)
		s.respondError(w, r, isForm, http.StatusInternalServerError, "We could not send your message. Please try again.")
		return
	}

	s.respondSuccess(w, r, isForm, "Thank you, your message has been sent.")
}

// Handle a newsletter signup
func (s *Service) NewsletterHandler(w http.ResponseWriter, r *http.Request) {

	var payload models.NewsletterSubmission
	isForm := !wantsJSON(r)

	if err := decodePayload(r, isForm, &payload); err != nil {
		s.respondError(w, r, isForm, http.StatusBadRequest, "Malformed request body")
		return
	}

	if isForm {
		payload = models.NewsletterSubmission{Email: r.PostFormValue("email")}
	}

	if reason := payload.Validate(); reason != "" {
		s.respondError(w, r, isForm, http.StatusBadRequest, reason)
		return
	}

	err := s.mailer.Send(r.Context(), newsletterNotice(s.config.EmailFrom, s.config.NewsletterInbox, payload.Email))
	if err == nil {
		err = s.mailer.Send(r.Context(), newsletterConfirmation(s.config.EmailFrom, payload.Email))
	}

	if err != nil {
		log.Printf("Failed to deliver newsletter signup: %v", err)
		s.respondError(w, r, isForm, http.StatusInternalServerError, "We could not sign you up. Please try again.")
		return
	}

	s.respondSuccess(w, r, isForm, "Thank you for subscribing.")
}

// The endpoints serve client-side forms posting JSON and, as a no-JS
// fallback, plain form posts answered with a redirect and a flash.
func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Content-Type"), "application/json")
}

func decodePayload(r *http.Request, isForm bool, dest any) error {
	if isForm {
		return r.ParseForm()
	}
	return json.NewDecoder(r.Body).Decode(dest)
}

func (s *Service) respondError(
	w http.ResponseWriter, r *http.Request,
	isForm bool, status int, reason string,
) {
	if !isForm {
		s.ui.JSONError(w, r, status, reason)
		return
	}

	s.ui.StoreFlashMessage(w, r, &models.FlashMessage{Message: reason, Category: "error"})
	http.Redirect(w, r, referrerPath(r), http.StatusSeeOther)
}

func (s *Service) respondSuccess(w http.ResponseWriter, r *http.Request, isForm bool, message string) {
	if !isForm {
		s.ui.WriteJSON(w, r, models.JSONSuccessData{Success: true, Message: message})
		return
	}

	s.ui.StoreFlashMessage(w, r, &models.FlashMessage{Message: message, Category: "success"})
	http.Redirect(w, r, referrerPath(r), http.StatusSeeOther)
}

func referrerPath(r *http.Request) string {
	if ref := r.Header.Get("Referer"); strings.HasPrefix(ref, "/") {
		return ref
	}
	return "/"
}

func contactNotice(from, to string, c *models.ContactSubmission) *mailer.Email {
	body := fmt.Sprintf(
		"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Organization:</strong> %s</p>"+
			"<p><strong>Inquiry:</strong> %s</p>"+
			"<p>%s</p>",
		template.HTMLEscapeString(c.Name),
		template.HTMLEscapeString(c.Email),
		template.HTMLEscapeString(c.Organization),
		template.HTMLEscapeString(c.InquiryType),
		template.HTMLEscapeString(c.Message),
	)

	return &mailer.Email{
		From:    from,
		To:      []string{to},
		ReplyTo: c.Email,
		Subject: fmt.Sprintf("New contact inquiry from %s", c.Name),
		HTML:    body,
	}
}

func contactConfirmation(from string, c *models.ContactSubmission) *mailer.Email {
	return &mailer.Email{
		From:    from,
		To:      []string{c.Email},
		Subject: "We received your message",
		HTML: fmt.Sprintf(
			"<p>Hello %s,</p><p>Thank you for reaching out. "+
				"We typically respond within two working days.</p>",
			template.HTMLEscapeString(c.Name),
		),
	}
}

func newsletterNotice(from, to, email string) *mailer.Email {
	return &mailer.Email{
		From:    from,
		To:      []string{to},
		Subject: "New newsletter signup",
		HTML:    fmt.Sprintf("<p>New subscriber: %s</p>", template.HTMLEscapeString(email)),
	}
}

func newsletterConfirmation(from, email string) *mailer.Email {
	return &mailer.Email{
		From:    from,
		To:      []string{email},
		Subject: "Welcome to the newsletter",
		HTML:    "<p>You are subscribed. We send one issue a month, no more.</p>",
	}
}
