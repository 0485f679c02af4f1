package models

import "time"

// StaticFile holds a static asset loaded from the embedded FS,
// minified and pre-compressed at startup
type StaticFile struct {
	Bytes      []byte
	Compressed []byte
	Etag       string
	MediaType  string
	ModTime    time.Time
}

// StaticFiles maps URL paths to static assets
type StaticFiles map[string]*StaticFile

// TextFiles maps URL paths to plain text files such as robots.txt
type TextFiles map[string]*StaticFile
