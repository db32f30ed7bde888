package driverelay_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sagarc03/driverelay"
)

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name      string
		headers   map[string]string
		altHeader string
		wantToken string
		wantOK    bool
	}{
		{
			name:      "bearer authorization header",
			headers:   map[string]string{"Authorization": "Bearer ya29.token-value"},
			altHeader: driverelay.DefaultAltAuthHeader,
			wantToken: "ya29.token-value",
			wantOK:    true,
		},
		{
			name:      "alternate header fallback",
			headers:   map[string]string{"x-goog-authenticated-user-oauth2": "ya29.alt-token"},
			altHeader: driverelay.DefaultAltAuthHeader,
			wantToken: "ya29.alt-token",
			wantOK:    true,
		},
		{
			name: "authorization wins over alternate header",
			headers: map[string]string{
				"Authorization":                    "Bearer primary",
				"x-goog-authenticated-user-oauth2": "secondary",
			},
			altHeader: driverelay.DefaultAltAuthHeader,
			wantToken: "primary",
			wantOK:    true,
		},
		{
			name:      "no headers",
			headers:   map[string]string{},
			altHeader: driverelay.DefaultAltAuthHeader,
			wantOK:    false,
		},
		{
			name:      "authorization without bearer prefix",
			headers:   map[string]string{"Authorization": "Basic dXNlcjpwYXNz"},
			altHeader: driverelay.DefaultAltAuthHeader,
			wantOK:    false,
		},
		{
			name:      "lowercase bearer prefix is rejected",
			headers:   map[string]string{"Authorization": "bearer token"},
			altHeader: driverelay.DefaultAltAuthHeader,
			wantOK:    false,
		},
		{
			name:      "bearer without space is rejected",
			headers:   map[string]string{"Authorization": "Bearertoken"},
			altHeader: driverelay.DefaultAltAuthHeader,
			wantOK:    false,
		},
		{
			name:      "non-bearer authorization falls through to alternate header",
			headers:   map[string]string{"Authorization": "Basic abc", "x-goog-authenticated-user-oauth2": "alt"},
			altHeader: driverelay.DefaultAltAuthHeader,
			wantToken: "alt",
			wantOK:    true,
		},
		{
			name:      "empty alternate header name disables fallback",
			headers:   map[string]string{"x-goog-authenticated-user-oauth2": "alt"},
			altHeader: "",
			wantOK:    false,
		},
		{
			name:      "custom alternate header name",
			headers:   map[string]string{"X-Proxy-Token": "proxied"},
			altHeader: "X-Proxy-Token",
			wantToken: "proxied",
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			for k, v := range tt.headers {
				h.Set(k, v)
			}

			token, ok := driverelay.ExtractToken(h, tt.altHeader)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestTokenPrefix(t *testing.T) {
	assert.Equal(t, "ya29.abc...", driverelay.TokenPrefix("ya29.abcdefghij"))
	assert.Equal(t, "short", driverelay.TokenPrefix("short"))
	assert.Equal(t, "", driverelay.TokenPrefix(""))
}
