package richtext

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/gosimple/slug"
	"github.com/lexcentre/website/internal/models"
)

// Block kind dispatch table. New kinds are added here,
// the traversal in richtext.go stays untouched.
var blockRenderers = map[string]BlockRenderer{
	"block":   renderTextBlock,
	"image":   renderImage,
	"callout": renderCallout,
}

// Style dispatch for regular text blocks
var styleRenderers = map[string]func(r *Renderer, sb *strings.Builder, b *models.Block){
	"normal":     renderParagraph,
	"h2":         renderHeading(2),
	"h3":         renderHeading(3),
	"h4":         renderHeading(4),
	"blockquote": renderBlockquote,
}

// Callout tones and their visual treatment,
// an unrecognized tone falls back to info
var calloutTones = map[string]string{
	"info":      "callout-info",
	"warning":   "callout-warning",
	"tip":       "callout-tip",
	"important": "callout-important",
}

func renderTextBlock(r *Renderer, sb *strings.Builder, b *models.Block) {
	renderStyle, ok := styleRenderers[b.Style]
	if !ok {
		renderStyle = renderParagraph
	}
	renderStyle(r, sb, b)
}

func renderParagraph(r *Renderer, sb *strings.Builder, b *models.Block) {
	sb.WriteString("<p>")
	sb.WriteString(r.renderChildren(b))
	sb.WriteString("</p>")
}

// Headings carry an anchor id derived from their text
func renderHeading(level int) func(r *Renderer, sb *strings.Builder, b *models.Block) {
	return func(r *Renderer, sb *strings.Builder, b *models.Block) {
		anchor := slug.Make(b.PlainText())
		fmt.Fprintf(sb, `<h%d id="%s">`, level, anchor)
		sb.WriteString(r.renderChildren(b))
		fmt.Fprintf(sb, "</h%d>", level)
	}
}

func renderBlockquote(r *Renderer, sb *strings.Builder, b *models.Block) {
	sb.WriteString("<blockquote>")
	sb.WriteString(r.renderChildren(b))
	sb.WriteString("</blockquote>")
}

func renderImage(r *Renderer, sb *strings.Builder, b *models.Block) {

	src := r.images.URL(b.Asset)
	if src == "" {
		return
	}

	alt := template.HTMLEscapeString(b.Alt)
	sb.WriteString("<figure>")
	fmt.Fprintf(sb, `<img src="%s" alt="%s" loading="lazy">`, src, alt)
	if b.Caption != "" {
		fmt.Fprintf(sb, "<figcaption>%s</figcaption>", template.HTMLEscapeString(b.Caption))
	}
	sb.WriteString("</figure>")
}

func renderCallout(r *Renderer, sb *strings.Builder, b *models.Block) {

	class, ok := calloutTones[b.Tone]
	if !ok {
		class = calloutTones["info"]
	}

	text := b.Text
	if text == "" {
		text = b.PlainText()
	}

	fmt.Fprintf(sb, `<aside class="callout %s">%s</aside>`, class, template.HTMLEscapeString(text))
}

// Unknown block kinds degrade to an unstyled paragraph so
// their text content is never lost
func renderUnknown(r *Renderer, sb *strings.Builder, b *models.Block) {

	text := r.renderChildren(b)
	if text == "" {
		text = template.HTMLEscapeString(b.Text)
	}

	if text == "" {
		return
	}

	sb.WriteString("<p>")
	sb.WriteString(text)
	sb.WriteString("</p>")
}
