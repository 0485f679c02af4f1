// Package markdown converts the markdown bodies of the embedded
// static pages (privacy, terms) to sanitized HTML.
package markdown

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

var policy = bluemonday.UGCPolicy()

// ToHTML renders markdown to sanitized HTML
func ToHTML(source []byte) (template.HTML, error) {

	var buf bytes.Buffer
	if err := md.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown; %w", err)
	}

	return template.HTML(policy.SanitizeBytes(buf.Bytes())), nil
}
