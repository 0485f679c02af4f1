package ui

import (
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/lexcentre/website/internal/models"
	"github.com/lexcentre/website/web"
	"github.com/tdewolff/minify"
)

// These are files/dirs within the embedded filesystem 'web'
const base = "templates/base.html"
const partials = "templates/partials"
const sitemaps = "templates/sitemaps"

// Parse the templates and create a template map
func parseTemplates(m *minify.M) models.TemplateMap {

	templateMap := make(models.TemplateMap)
	baseTemplate := template.Must(parseTemplateFiles(m, nil, base))

	// Function used to process each file/dir in the root, including the root
	walkDirFunc := func(path string, info fs.DirEntry, err error) error {

		// Returning back the error will cause
		// WalkDir to stop walking the entire tree
		if err != nil {
			return err
		}

		// Skip directories
		if info.IsDir() {
			return nil
		}

		// Extract the template name
		name := filepath.Base(path)

		// Clone the base for regular pages, the sitemap
		// templates stand on their own
		var baseTmpl *template.Template
		if !strings.Contains(path, "sitemaps") {
			baseTmpl, err = baseTemplate.Clone()
			if err != nil {
				log.Fatalf("couldn't clone the base '%s' template", base)
			}
		}

		templateMap[name] = template.Must(parseTemplateFiles(m, baseTmpl, path))
		return nil
	}

	// Walk the directory and parse each template in partials
	if err := fs.WalkDir(web.Files, partials, walkDirFunc); err != nil {
		log.Fatal(err)
	}

	// Walk the directory and parse each template in sitemaps
	if err := fs.WalkDir(web.Files, sitemaps, walkDirFunc); err != nil {
		log.Fatal(err)
	}

	return templateMap
}

// Minify and parse the HTML templates as per the tdewolff/minify docs.
func parseTemplateFiles(m *minify.M, tmpl *template.Template, filepaths ...string) (*template.Template, error) {

	for _, fp := range filepaths {

		b, err := fs.ReadFile(web.Files, fp)
		if err != nil {
			return nil, err
		}

		name := filepath.Base(fp)
		if tmpl == nil {
			tmpl = template.New(name)
		} else {
			tmpl = tmpl.New(name)
		}

		// Get the file extension
		var ext string = strings.Split(name, ".")[1]

		// Set media type
		var mediaType string
		switch ext {
		case "html":
			mediaType = "text/html"
		case "xml", "xsl":
			mediaType = "text/xml"
		}

		if mediaType == "" {
			return nil, fmt.Errorf("unknown media type: %s", fp)
		}

		mb, err := m.Bytes(mediaType, b)
		if err != nil {
			return nil, err
		}

		tmpl, err = tmpl.Parse(string(mb))
		if err != nil {
			return nil, err
		}
	}

	return tmpl, nil
}
