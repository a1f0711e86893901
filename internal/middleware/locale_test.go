package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func runLocale(t *testing.T, lookup CountryLookup, prep func(*http.Request)) (string, string) {
	t.Helper()
	var locale, country string
	handler := Locale("en", lookup)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale = LocaleFromContext(r.Context())
		country = CountryFromContext(r.Context())
	}))
	req := httptest.NewRequest("GET", "/v1/healthz", nil)
	if prep != nil {
		prep(req)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return locale, country
}

func TestLocaleDetection(t *testing.T) {
	tests := []struct {
		name string
		prep func(*http.Request)
		want string
	}{
		{"fallback", nil, "en"},
		{"x-locale header wins", func(r *http.Request) {
			r.Header.Set("X-Locale", "FR-ca")
			r.Header.Set("Accept-Language", "de-DE")
		}, "fr"},
		{"accept-language", func(r *http.Request) {
			r.Header.Set("Accept-Language", "es-MX,es;q=0.9,en;q=0.8")
		}, "es"},
		{"wildcard skipped", func(r *http.Request) {
			r.Header.Set("Accept-Language", "*, ja;q=0.5")
		}, "ja"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locale, _ := runLocale(t, nil, tt.prep)
			if locale != tt.want {
				t.Fatalf("locale = %q, want %q", locale, tt.want)
			}
		})
	}
}

func TestLocaleCountryLookup(t *testing.T) {
	lookup := func(ip string) (string, error) { return "jp", nil }
	_, country := runLocale(t, lookup, nil)
	if country != "JP" {
		t.Fatalf("country = %q, want JP", country)
	}
}

func TestLocaleLookupErrorDegrades(t *testing.T) {
	lookup := func(ip string) (string, error) { return "", errors.New("db unavailable") }
	locale, country := runLocale(t, lookup, nil)
	if country != "" {
		t.Fatalf("country = %q, want empty", country)
	}
	if locale != "en" {
		t.Fatalf("locale = %q, want en", locale)
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:4444"
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if got := ClientIP(req); got != "203.0.113.9" {
		t.Fatalf("ClientIP = %q", got)
	}
	req.Header.Del("X-Forwarded-For")
	if got := ClientIP(req); got != "10.0.0.1" {
		t.Fatalf("ClientIP without header = %q", got)
	}
}
