package models

import "html/template"

type SitemapItem struct {
	Location     string
	LastModified string
}

type SitemapPart struct {
	Entries      []*SitemapItem
	Location     string
	LastModified string
}

type SitemapIndex map[string]SitemapPart

// TemplateMap holds the parsed templates keyed by file name
type TemplateMap map[string]*template.Template
