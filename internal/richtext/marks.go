package richtext

import (
	"fmt"
	"html/template"
	"net/url"

	"github.com/lexcentre/website/internal/models"
)

// Mark kind dispatch table. Decorators carry no definition,
// annotations receive the mark definition from the block.
var markRenderers = map[string]MarkRenderer{
	"strong":       wrap("strong"),
	"em":           wrap("em"),
	"underline":    wrap("u"),
	"code":         wrap("code"),
	"link":         renderLink,
	"internalLink": renderInternalLink,
}

func wrap(tag string) MarkRenderer {
	return func(inner string, _ *models.MarkDef) string {
		return fmt.Sprintf("<%s>%s</%s>", tag, inner, tag)
	}
}

// External links open in a new tab with referrer/opener protection,
// relative and internal links stay in the same tab
func renderLink(inner string, def *models.MarkDef) string {

	if def == nil || def.Href == "" {
		return inner
	}

	href := template.HTMLEscapeString(def.Href)
	if isExternal(def.Href) {
		return fmt.Sprintf(
			`<a href="%s" target="_blank" rel="noopener noreferrer">%s</a>`,
			href, inner,
		)
	}

	return fmt.Sprintf(`<a href="%s">%s</a>`, href, inner)
}

// Internal reference links resolve to a same-tab site path
func renderInternalLink(inner string, def *models.MarkDef) string {

	if def == nil || def.Slug == "" {
		return inner
	}

	return fmt.Sprintf(`<a href="/%s/">%s</a>`, template.HTMLEscapeString(def.Slug), inner)
}

func isExternal(href string) bool {
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
