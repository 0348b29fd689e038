package auth

import "strings"

// PublicEndpoints lists paths reachable without a bearer token:
// orchestration probes, the Prometheus scrape target, and the two
// credential endpoints that exist to obtain a token in the first place.
var PublicEndpoints = []string{
	"/health",
	"/ready",
	"/live",
	"/metrics",
	"/api/v1/sign-up",
	"/api/v1/sign-in",
}

// IsPublicEndpoint reports whether path may bypass authentication. The path
// is a URL path with no query string. Entries ending in '/' match by prefix;
// all others match exactly, with a trailing slash tolerated. /health matches
// /health/ but never /health/detail or /healthcheck.
func IsPublicEndpoint(path string) bool {
	for _, endpoint := range PublicEndpoints {
		if strings.HasSuffix(endpoint, "/") {
			if strings.HasPrefix(path, endpoint) {
				return true
			}
			continue
		}

		if path == endpoint || path == endpoint+"/" {
			return true
		}
	}
	return false
}
