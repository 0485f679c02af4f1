package content

import (
	"context"
	"errors"
	"log"
	"slices"
)

// ErrNotFound means a valid single-record query matched nothing.
// It is a terminal state distinct from the store being unreachable
// and must never be masked by fallback data.
var ErrNotFound = errors.New("content: record not found")

// List runs a list or top-N query and substitutes the static fallback
// set when the store fails or returns nothing. The fallback is cloned
// so callers can never mutate the shared arrays.
func List[T any](ctx context.Context, f Fetcher, query string, params Params, fallback []T) []T {

	var items []T
	if err := f.Fetch(ctx, query, params, &items); err != nil {
		log.Printf("Content store unreachable, using fallback data; %v", err)
		return slices.Clone(fallback)
	}

	if len(items) == 0 {
		return slices.Clone(fallback)
	}

	return items
}

// One runs a single-record query. A missing record yields ErrNotFound,
// a store failure yields the underlying error. Fallback data is never
// substituted on this path.
func One[T any](ctx context.Context, f Fetcher, query string, params Params) (*T, error) {

	var item *T
	if err := f.Fetch(ctx, query, params, &item); err != nil {
		return nil, err
	}

	if item == nil {
		return nil, ErrNotFound
	}

	return item, nil
}

// Maybe runs a single-record query where absence is valid, such as
// the site settings singleton. Both failure and a missing record
// yield nil so the caller falls back to hard-coded defaults.
func Maybe[T any](ctx context.Context, f Fetcher, query string, params Params) *T {

	item, err := One[T](ctx, f, query, params)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("Content store unreachable for optional record; %v", err)
		}
		return nil
	}

	return item
}
