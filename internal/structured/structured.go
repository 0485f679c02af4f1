// Package structured projects content records into the linked-data
// documents embedded in page heads. Every emitter is total over its
// input, missing optional fields are omitted from the output and the
// produced document needs no further lookups.
package structured

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/lexcentre/website/internal/models"
)

const schemaContext = "https://schema.org"

// Crumb is one entry of a breadcrumb trail
type Crumb struct {
	Name string
	URL  string
}

// Script marshals a linked-data document into a script tag ready to
// be embedded verbatim into the page head
func Script(doc map[string]any) template.HTML {

	data, err := json.Marshal(doc)
	if err != nil {
		// Documents are built from plain values, this never fires
		log.Printf("Failed to encode structured data: %v", err)
		return ""
	}

	tag := fmt.Sprintf(`<script type="application/ld+json">%s</script>`, data)
	return template.HTML(tag)
}

// Article emits an Article document for any long-form record
func Article(doc *models.Document, pageURL, imageURL, authorName string) map[string]any {

	out := map[string]any{
		"@context": schemaContext,
		"@type":    "Article",
		"headline": doc.Title,
		"url":      pageURL,
	}

	if doc.Excerpt != "" {
		out["description"] = doc.Excerpt
	}
	if imageURL != "" {
		out["image"] = imageURL
	}
	if doc.PublishedAt != nil {
		out["datePublished"] = doc.PublishedAt.Format(time.RFC3339)
	}
	if authorName != "" {
		out["author"] = map[string]any{
			"@type": "Person",
			"name":  authorName,
		}
	}
	if len(doc.Topics) > 0 {
		out["keywords"] = doc.Topics
	}

	return out
}

// Event emits an Event document
func Event(event *models.Event, pageURL, imageURL string) map[string]any {

	out := map[string]any{
		"@context": schemaContext,
		"@type":    "Event",
		"name":     event.Title,
		"url":      pageURL,
	}

	if event.Excerpt != "" {
		out["description"] = event.Excerpt
	}
	if imageURL != "" {
		out["image"] = imageURL
	}
	if event.Date != nil {
		out["startDate"] = event.Date.Format(time.RFC3339)
	}
	if event.EndDate != nil {
		out["endDate"] = event.EndDate.Format(time.RFC3339)
	}

	if event.Online {
		out["eventAttendanceMode"] = "https://schema.org/OnlineEventAttendanceMode"
		out["location"] = map[string]any{
			"@type": "VirtualLocation",
			"url":   pageURL,
		}
	} else if event.Location != "" {
		out["location"] = map[string]any{
			"@type": "Place",
			"name":  event.Location,
		}
	}

	if event.RegistrationURL != "" {
		out["offers"] = map[string]any{
			"@type": "Offer",
			"url":   event.RegistrationURL,
		}
	}

	if len(event.Speakers) > 0 {
		var performers []map[string]any
		for _, speaker := range event.Speakers {
			performers = append(performers, map[string]any{
				"@type": "Person",
				"name":  speaker.Name,
			})
		}
		out["performer"] = performers
	}

	return out
}

// Organization emits the site-wide Organization document
func Organization(name, description, baseURL, logoURL, email, phone string) map[string]any {

	out := map[string]any{
		"@context": schemaContext,
		"@type":    "EducationalOrganization",
		"name":     name,
		"url":      baseURL,
	}

	if description != "" {
		out["description"] = description
	}
	if logoURL != "" {
		out["logo"] = logoURL
	}
	if email != "" {
		out["email"] = email
	}
	if phone != "" {
		out["telephone"] = phone
	}

	return out
}

// Service emits a Service document for a program or initiative
func Service(service *models.Service, pageURL, providerName string) map[string]any {

	out := map[string]any{
		"@context": schemaContext,
		"@type":    "Service",
		"name":     service.Name,
		"url":      pageURL,
	}

	if service.Summary != "" {
		out["description"] = service.Summary
	}
	if providerName != "" {
		out["provider"] = map[string]any{
			"@type": "EducationalOrganization",
			"name":  providerName,
		}
	}

	return out
}

// Breadcrumb emits a BreadcrumbList document for a trail
func Breadcrumb(crumbs []Crumb) map[string]any {

	items := make([]map[string]any, 0, len(crumbs))
	for i, crumb := range crumbs {
		item := map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     crumb.Name,
		}
		if crumb.URL != "" {
			item["item"] = crumb.URL
		}
		items = append(items, item)
	}

	return map[string]any{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}
