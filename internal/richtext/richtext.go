// Package richtext renders the store's portable rich-text bodies to
// HTML. Rendering is a pure walk over the ordered block sequence,
// dispatching on node kind through the tables in blocks.go and
// marks.go. Unknown kinds always degrade to plain text, content is
// never dropped and rendering never fails.
package richtext

import (
	"html/template"
	"strings"

	"github.com/lexcentre/website/internal/content"
	"github.com/lexcentre/website/internal/models"
)

// BlockRenderer writes one block to the output
type BlockRenderer func(r *Renderer, sb *strings.Builder, b *models.Block)

// MarkRenderer wraps already-escaped inner HTML of a span
type MarkRenderer func(inner string, def *models.MarkDef) string

type Renderer struct {
	images *content.ImageResolver
}

func New(images *content.ImageResolver) *Renderer {
	return &Renderer{images: images}
}

// Render walks the block sequence and produces HTML
func (r *Renderer) Render(blocks []models.Block) template.HTML {

	var sb strings.Builder
	for i := range blocks {
		block := &blocks[i]

		renderBlock, ok := blockRenderers[block.Type]
		if !ok {
			// Unknown block kind, keep the text as an unstyled paragraph
			renderBlock = renderUnknown
		}

		renderBlock(r, &sb, block)
	}

	return template.HTML(sb.String())
}

// renderChildren renders the ordered inline spans of a block,
// applying the span's marks inside out
func (r *Renderer) renderChildren(b *models.Block) string {

	var sb strings.Builder
	for _, span := range b.Children {
		sb.WriteString(r.renderSpan(&span, b.MarkDefs))
	}

	return sb.String()
}

func (r *Renderer) renderSpan(span *models.Span, defs []models.MarkDef) string {

	out := template.HTMLEscapeString(span.Text)

	for _, mark := range span.Marks {

		// A mark is either a decorator name or
		// the key of a mark definition
		def := findMarkDef(defs, mark)
		kind := mark
		if def != nil {
			kind = def.Type
		}

		renderMark, ok := markRenderers[kind]
		if !ok {
			// Unknown mark kind, leave the inner text unstyled
			continue
		}

		out = renderMark(out, def)
	}

	return out
}

func findMarkDef(defs []models.MarkDef, key string) *models.MarkDef {
	for i := range defs {
		if defs[i].Key == key {
			return &defs[i]
		}
	}
	return nil
}
