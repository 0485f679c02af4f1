// Package content talks to the external headless content store.
//
// The store is queried over HTTP with opaque, pre-validated query
// strings from the catalog in queries.go. The loader helpers in
// loader.go enforce the one fallback policy for the whole site:
// list queries substitute static fallback data on failure or
// emptiness, single-record queries surface a true not-found.
package content

import "context"

// Params are named query parameters substituted by the store
type Params map[string]any

// Fetcher executes a catalog query against the content store and
// decodes the result into dest. Implemented by Client; handlers and
// tests may substitute their own.
type Fetcher interface {
	Fetch(ctx context.Context, query string, params Params, dest any) error
}
