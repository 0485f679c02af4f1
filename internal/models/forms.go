package models

import (
	"regexp"
	"strings"
)

// Standard address pattern, intentionally permissive
var validEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Inquiry types accepted by the contact form
var validInquiryTypes = []string{
	"general",
	"programs",
	"partnerships",
	"media",
	"speaking",
}

// ContactSubmission is the contact form payload.
// It lives for the duration of one request and is never persisted.
type ContactSubmission struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization,omitempty"`
	InquiryType  string `json:"inquiryType"`
	Message      string `json:"message"`
}

// NewsletterSubmission is the newsletter signup payload
type NewsletterSubmission struct {
	Email string `json:"email"`
}

// ValidEmail reports whether the address matches the standard pattern
func ValidEmail(email string) bool {
	return validEmail.MatchString(email)
}

// Validate returns a human readable reason if the payload is invalid
func (c *ContactSubmission) Validate() string {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Message = strings.TrimSpace(c.Message)

	switch {
	case c.Name == "":
		return "Name is required"
	case c.Email == "":
		return "Email is required"
	case !ValidEmail(c.Email):
		return "Email address is not valid"
	case c.InquiryType == "":
		return "Inquiry type is required"
	case c.Message == "":
		return "Message is required"
	}

	for _, it := range validInquiryTypes {
		if c.InquiryType == it {
			return ""
		}
	}

	return "Unknown inquiry type"
}

// Validate returns a human readable reason if the payload is invalid
func (n *NewsletterSubmission) Validate() string {
	n.Email = strings.TrimSpace(n.Email)

	switch {
	case n.Email == "":
		return "Email is required"
	case !ValidEmail(n.Email):
		return "Email address is not valid"
	}

	return ""
}
