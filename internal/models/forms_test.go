package models

import "testing"

func TestContactSubmissionValidate(t *testing.T) {

	valid := ContactSubmission{
		Name:        "Jordan Blake",
		Email:       "jordan@example.org",
		InquiryType: "general",
		Message:     "I would like to volunteer at a clinic.",
	}

	tests := []struct {
		name     string
		mutate   func(c *ContactSubmission)
		expected string
	}{
		{"valid submission", func(c *ContactSubmission) {}, ""},
		{"missing name", func(c *ContactSubmission) { c.Name = "" }, "Name is required"},
		{"whitespace name", func(c *ContactSubmission) { c.Name = "   " }, "Name is required"},
		{"missing email", func(c *ContactSubmission) { c.Email = "" }, "Email is required"},
		{"malformed email", func(c *ContactSubmission) { c.Email = "not-an-address" }, "Email address is not valid"},
		{"email with spaces", func(c *ContactSubmission) { c.Email = "a b@example.org" }, "Email address is not valid"},
		{"missing inquiry type", func(c *ContactSubmission) { c.InquiryType = "" }, "Inquiry type is required"},
		{"unknown inquiry type", func(c *ContactSubmission) { c.InquiryType = "sales" }, "Unknown inquiry type"},
		{"missing message", func(c *ContactSubmission) { c.Message = "" }, "Message is required"},
		{"organization is optional", func(c *ContactSubmission) { c.Organization = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			submission := valid
			tt.mutate(&submission)
			if got := submission.Validate(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewsletterSubmissionValidate(t *testing.T) {

	tests := []struct {
		name, email, expected string
	}{
		{"valid address", "reader@example.org", ""},
		{"address gets trimmed", "  reader@example.org  ", ""},
		{"missing address", "", "Email is required"},
		{"no at sign", "reader.example.org", "Email address is not valid"},
		{"no domain dot", "reader@example", "Email address is not valid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			submission := NewsletterSubmission{Email: tt.email}
			if got := submission.Validate(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
