package pathutil

import (
	"regexp"
	"strings"
)

// pathPatterns maps dynamic routes to templates, most specific first.
// Pre-compiled once at startup.
var pathPatterns = []struct {
	pattern  *regexp.Regexp
	template string
}{
	{regexp.MustCompile(`^/api/v1/article/\d+$`), "/api/v1/article/:id"},
	{regexp.MustCompile(`^/api/v1/comment/\d+$`), "/api/v1/comment/:id"},
}

// NormalizePath collapses dynamic URL paths into templates so metrics labels
// stay low-cardinality: /api/v1/article/123 becomes /api/v1/article/:id.
// Static paths pass through unchanged. Query strings and trailing slashes are
// stripped first.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
