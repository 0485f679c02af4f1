package middlewares

import (
	"net/http"
	"slices"
	"strings"

	"github.com/lexcentre/website/internal/utils"
)

// Check if this is a static file
func isStatic(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/static/") ||
		slices.Contains(utils.RootFavicons, r.URL.Path)
}
