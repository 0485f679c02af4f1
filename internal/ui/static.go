package ui

import (
	"bytes"
	"compress/gzip"
	"crypto/md5" // #nosec G501
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/lexcentre/website/internal/models"
	"github.com/lexcentre/website/web"
	"github.com/tdewolff/minify"
)

// Create minified versions of the static files and cache them in memory.
func parseStaticFiles(m *minify.M, dir string) models.StaticFiles {

	sf := make(models.StaticFiles)

	// Function used to process each file/dir in the root, including the root
	walkDirFunc := func(path string, info fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Skip directories
		if info.IsDir() {
			return nil
		}

		// Skip minified files
		if strings.Contains(info.Name(), ".min.") {
			return nil
		}

		// Embedded files have zero mod time
		stat, err := fs.Stat(web.Files, path)
		if err != nil {
			return err
		}

		// Read the file
		b, err := fs.ReadFile(web.Files, path)
		if err != nil {
			return err
		}

		// Get the file extension
		ext := strings.Split(info.Name(), ".")[1]

		// Set media type
		var mediaType string
		switch ext {
		case "css":
			mediaType = "text/css"
		case "js":
			mediaType = "application/javascript"
		case "webmanifest":
			mediaType = "application/manifest+json"
		}

		// Minify the file if we know its media type
		if mediaType != "" {
			if b, err = m.Bytes(mediaType, b); err != nil {
				return err
			}
		}

		// Compute the etag from the content
		etag := fmt.Sprintf("%x", md5.Sum(b)) // #nosec G401

		sf["/"+path] = &models.StaticFile{
			Bytes:      b,
			Compressed: compress(b),
			Etag:       etag,
			MediaType:  mediaType,
			ModTime:    stat.ModTime(),
		}

		return nil
	}

	// Walk the directory and process each static file
	if err := fs.WalkDir(web.Files, dir, walkDirFunc); err != nil {
		log.Fatal(err)
	}

	return sf
}

// Load the plain text files (robots.txt and friends) into memory
func parseTextFiles(dir string) models.TextFiles {

	tf := make(models.TextFiles)

	entries, err := fs.ReadDir(web.Files, dir)
	if err != nil {
		log.Fatal(err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		b, err := fs.ReadFile(web.Files, dir+"/"+entry.Name())
		if err != nil {
			log.Fatal(err)
		}

		tf["/"+entry.Name()] = &models.StaticFile{Bytes: b}
	}

	return tf
}

// Gzip the content, return nil if compression gains nothing
func compress(b []byte) []byte {

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)

	if _, err := gz.Write(b); err != nil {
		return nil
	}

	if err := gz.Close(); err != nil {
		return nil
	}

	if buf.Len() >= len(b) {
		return nil
	}

	return buf.Bytes()
}
