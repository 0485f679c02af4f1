package richtext

import (
	"strings"
	"testing"

	"github.com/lexcentre/website/internal/content"
	"github.com/lexcentre/website/internal/models"
)

func testRenderer() *Renderer {
	return New(content.NewImageResolver("abc123", "production", 800))
}

func span(text string, marks ...string) models.Span {
	return models.Span{Type: "span", Text: text, Marks: marks}
}

func TestRenderBlocks(t *testing.T) {

	tests := []struct {
		name     string
		blocks   []models.Block
		expected string
	}{
		{
			"plain paragraph",
			[]models.Block{{Type: "block", Style: "normal", Children: []models.Span{span("Hello")}}},
			"<p>Hello</p>",
		},
		{
			"text is escaped",
			[]models.Block{{Type: "block", Style: "normal", Children: []models.Span{span("a < b & c")}}},
			"<p>a &lt; b &amp; c</p>",
		},
		{
			"heading carries an anchor",
			[]models.Block{{Type: "block", Style: "h2", Children: []models.Span{span("Your Rights at Work")}}},
			`<h2 id="your-rights-at-work">Your Rights at Work</h2>`,
		},
		{
			"unknown style degrades to paragraph",
			[]models.Block{{Type: "block", Style: "h9", Children: []models.Span{span("Text")}}},
			"<p>Text</p>",
		},
		{
			"blockquote",
			[]models.Block{{Type: "block", Style: "blockquote", Children: []models.Span{span("Quoted")}}},
			"<blockquote>Quoted</blockquote>",
		},
		{
			"unknown block kind keeps the text",
			[]models.Block{{Type: "poll", Children: []models.Span{span("Survives")}}},
			"<p>Survives</p>",
		},
		{
			"unknown block kind with nothing to show",
			[]models.Block{{Type: "divider"}},
			"",
		},
		{
			"callout with a known tone",
			[]models.Block{{Type: "callout", Tone: "warning", Text: "Deadlines apply"}},
			`<aside class="callout callout-warning">Deadlines apply</aside>`,
		},
		{
			"callout with unknown tone falls back to info",
			[]models.Block{{Type: "callout", Tone: "shiny", Text: "Note"}},
			`<aside class="callout callout-info">Note</aside>`,
		},
		{
			"image with a valid asset",
			[]models.Block{{
				Type:    "image",
				Asset:   models.AssetRef{Ref: "image-f00-800x600-jpg"},
				Alt:     "A courtroom",
				Caption: "The old courtroom",
			}},
			`<figure><img src="https://cdn.sanity.io/images/abc123/production/f00-800x600.jpg?w=800&auto=format" alt="A courtroom" loading="lazy"><figcaption>The old courtroom</figcaption></figure>`,
		},
		{
			"image with a broken asset is skipped",
			[]models.Block{{Type: "image", Asset: models.AssetRef{Ref: "broken"}}},
			"",
		},
		{
			"blocks keep their order",
			[]models.Block{
				{Type: "block", Style: "h2", Children: []models.Span{span("First")}},
				{Type: "block", Style: "normal", Children: []models.Span{span("Second")}},
			},
			`<h2 id="first">First</h2><p>Second</p>`,
		},
	}

	r := testRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(r.Render(tt.blocks))
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRenderMarks(t *testing.T) {

	tests := []struct {
		name     string
		block    models.Block
		expected string
	}{
		{
			"strong decorator",
			models.Block{Type: "block", Children: []models.Span{span("bold", "strong")}},
			"<p><strong>bold</strong></p>",
		},
		{
			"stacked decorators apply inside out",
			models.Block{Type: "block", Children: []models.Span{span("both", "strong", "em")}},
			"<p><em><strong>both</strong></em></p>",
		},
		{
			"unknown mark leaves text unstyled",
			models.Block{Type: "block", Children: []models.Span{span("plain", "sparkle")}},
			"<p>plain</p>",
		},
		{
			"external link opens a new tab",
			models.Block{
				Type:     "block",
				Children: []models.Span{span("the act", "m1")},
				MarkDefs: []models.MarkDef{{Key: "m1", Type: "link", Href: "https://example.org/act"}},
			},
			`<p><a href="https://example.org/act" target="_blank" rel="noopener noreferrer">the act</a></p>`,
		},
		{
			"relative link stays in the same tab",
			models.Block{
				Type:     "block",
				Children: []models.Span{span("contact us", "m1")},
				MarkDefs: []models.MarkDef{{Key: "m1", Type: "link", Href: "/contact/"}},
			},
			`<p><a href="/contact/">contact us</a></p>`,
		},
		{
			"internal reference link",
			models.Block{
				Type:     "block",
				Children: []models.Span{span("our guide", "m1")},
				MarkDefs: []models.MarkDef{{Key: "m1", Type: "internalLink", Slug: "resources/guides/tenant-rights"}},
			},
			`<p><a href="/resources/guides/tenant-rights/">our guide</a></p>`,
		},
		{
			"link without a definition keeps the text",
			models.Block{Type: "block", Children: []models.Span{span("orphan", "link")}},
			"<p>orphan</p>",
		},
	}

	r := testRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(r.Render([]models.Block{tt.block}))
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRenderNeverPanics(t *testing.T) {

	// A grab bag of malformed input, the renderer must
	// produce something for all of it
	blocks := []models.Block{
		{},
		{Type: "block"},
		{Type: "callout"},
		{Type: "image"},
		{Type: "block", Children: []models.Span{{Marks: []string{"m-missing"}}}},
	}

	got := string(testRenderer().Render(blocks))
	if strings.Contains(got, "<script") {
		t.Errorf("unexpected script output: %q", got)
	}
}
