package guestbook

import (
	"net/http"
	"strings"
)

// UnknownOrigin is attributed to submissions whose origin cannot be resolved
// from the request headers.
const UnknownOrigin = "unknown"

// ResolveOrigin extracts the client address a submission is attributed to.
// It prefers the first X-Forwarded-For value, then X-Real-IP, then the
// literal "unknown". Pure function; always succeeds.
func ResolveOrigin(headers http.Header) string {
	if forwarded := headers.Get("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}
	if realIP := strings.TrimSpace(headers.Get("X-Real-IP")); realIP != "" {
		return realIP
	}
	return UnknownOrigin
}
