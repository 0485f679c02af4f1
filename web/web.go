// Package web holds the embedded templates, static assets,
// plain text files and the markdown content pages.
package web

import "embed"

//go:embed templates static text content
var Files embed.FS
