package guestbook

import (
	"net/http"
	"testing"
)

func TestResolveOrigin_PrefersForwardedFor(t *testing.T) {
	headers := http.Header{}
	headers.Set("X-Forwarded-For", " 203.0.113.7 , 10.0.0.1")
	headers.Set("X-Real-IP", "198.51.100.2")

	if got := ResolveOrigin(headers); got != "203.0.113.7" {
		t.Fatalf("ResolveOrigin returned %q, want first forwarded value", got)
	}
}

func TestResolveOrigin_FallsBackToRealIP(t *testing.T) {
	headers := http.Header{}
	headers.Set("X-Real-IP", "198.51.100.2")

	if got := ResolveOrigin(headers); got != "198.51.100.2" {
		t.Fatalf("ResolveOrigin returned %q, want X-Real-IP value", got)
	}
}

func TestResolveOrigin_UnknownWhenHeadersAbsent(t *testing.T) {
	if got := ResolveOrigin(http.Header{}); got != UnknownOrigin {
		t.Fatalf("ResolveOrigin returned %q, want %q", got, UnknownOrigin)
	}
}

func TestResolveOrigin_IPv6(t *testing.T) {
	headers := http.Header{}
	headers.Set("X-Forwarded-For", "2001:db8::1")

	if got := ResolveOrigin(headers); got != "2001:db8::1" {
		t.Fatalf("ResolveOrigin returned %q, want IPv6 address", got)
	}
}
