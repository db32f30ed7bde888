package driverelay

import (
	"net/http"
	"strings"
)

// DefaultAltAuthHeader is the provider-specific header checked when no
// Authorization header is present. Deployments behind a different proxy can
// override it in configuration.
const DefaultAltAuthHeader = "x-goog-authenticated-user-oauth2"

// bearerPrefix is matched case-sensitively, single trailing space.
const bearerPrefix = "Bearer "

// ExtractToken pulls a bearer token out of the request headers. Order
// matters: an Authorization header with a Bearer prefix wins, then the raw
// value of altHeader. Returns false when neither yields a token. The token
// is never validated here; only the provider can judge it.
func ExtractToken(h http.Header, altHeader string) (string, bool) {
	if auth := h.Get("Authorization"); strings.HasPrefix(auth, bearerPrefix) {
		return strings.TrimPrefix(auth, bearerPrefix), true
	}

	if altHeader != "" {
		if v := h.Get(altHeader); v != "" {
			return v, true
		}
	}

	return "", false
}

// TokenPrefix returns a short loggable prefix of a token. Full tokens must
// never reach the logs.
func TokenPrefix(token string) string {
	const n = 8
	if len(token) <= n {
		return token
	}
	return token[:n] + "..."
}
