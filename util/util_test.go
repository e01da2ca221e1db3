package util

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mvbakke/wcag-reviews/util/values"
)

func TestNormalizeURL(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"bare domain gets https", "eksempel.no", "https://eksempel.no", false},
		{"keeps explicit http", "http://eksempel.no", "http://eksempel.no", false},
		{"lowercases host", "https://Eksempel.NO/Side", "https://eksempel.no/Side", false},
		{"strips trailing slash", "https://eksempel.no/om-oss/", "https://eksempel.no/om-oss", false},
		{"strips fragment", "https://eksempel.no/side#toppen", "https://eksempel.no/side", false},
		{"keeps query", "https://eksempel.no/sok?q=wcag", "https://eksempel.no/sok?q=wcag", false},
		{"whitespace trimmed", "  eksempel.no  ", "https://eksempel.no", false},
		{"empty", "", "", true},
		{"blank", "   ", "", true},
		{"scheme only", "https://", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeURL(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Errorf("NormalizeURL(%q) = %q; want error", tc.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeURL(%q) returned error %v", tc.raw, err)
			}
			if got != tc.want {
				t.Errorf("NormalizeURL(%q) = %q; want %q", tc.raw, got, tc.want)
			}
		})
	}
}

// Two spellings of the same site must normalize identically, since the
// websites table is keyed on the normalized url.
func TestNormalizeURLConverges(t *testing.T) {
	spellings := []string{
		"eksempel.no/om-oss",
		"https://eksempel.no/om-oss",
		"https://EKSEMPEL.no/om-oss/",
		"https://eksempel.no/om-oss#kontakt",
	}

	first, err := NormalizeURL(spellings[0])
	if err != nil {
		t.Fatalf("NormalizeURL(%q) returned error %v", spellings[0], err)
	}
	for _, s := range spellings[1:] {
		got, err := NormalizeURL(s)
		if err != nil {
			t.Fatalf("NormalizeURL(%q) returned error %v", s, err)
		}
		if got != first {
			t.Errorf("NormalizeURL(%q) = %q; want %q", s, got, first)
		}
	}
}

func TestSafeRedirectPath(t *testing.T) {
	testCases := []struct {
		name string
		path string
		want string
	}{
		{"relative path kept", "/assessment/123", "/assessment/123"},
		{"root kept", "/", "/"},
		{"empty falls back", "", "/"},
		{"absolute url rejected", "https://evil.example/phish", "/"},
		{"protocol relative rejected", "//evil.example", "/"},
		{"backslash trick rejected", `/\evil.example`, "/"},
		{"missing leading slash rejected", "assessment/123", "/"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SafeRedirectPath(tc.path); got != tc.want {
				t.Errorf("SafeRedirectPath(%q) = %q; want %q", tc.path, got, tc.want)
			}
		})
	}
}

func TestWantsJSON(t *testing.T) {
	testCases := []struct {
		name    string
		headers map[string]string
		want    bool
	}{
		{"xhr header", map[string]string{values.HeaderRequestedWith: "XMLHttpRequest"}, true},
		{"xhr header case insensitive", map[string]string{values.HeaderRequestedWith: "xmlhttprequest"}, true},
		{"json accept", map[string]string{"Accept": "application/json"}, true},
		{"json among others", map[string]string{"Accept": "text/html,application/json;q=0.9"}, true},
		{"html accept", map[string]string{"Accept": "text/html"}, false},
		{"no headers", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.headers {
				r.Header.Set(k, v)
			}
			if got := WantsJSON(r); got != tc.want {
				t.Errorf("WantsJSON() = %v; want %v", got, tc.want)
			}
		})
	}
}

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		status string
		want   int
	}{
		{values.Success, http.StatusOK},
		{values.Created, http.StatusCreated},
		{values.BadRequestBody, http.StatusBadRequest},
		{values.Unprocessable, http.StatusUnprocessableEntity},
		{values.NotFound, http.StatusNotFound},
		{values.Conflict, http.StatusConflict},
		{values.NotAllowed, http.StatusForbidden},
		{values.NotAuthorised, http.StatusUnauthorized},
		{values.TokenExpired, http.StatusUnauthorized},
		{values.Error, http.StatusInternalServerError},
		{"unknown", http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.status, func(t *testing.T) {
			if got := StatusCode(tc.status); got != tc.want {
				t.Errorf("StatusCode(%q) = %d; want %d", tc.status, got, tc.want)
			}
		})
	}
}

func TestNotBlank(t *testing.T) {
	if NotBlank("   ") {
		t.Error("NotBlank accepted whitespace")
	}
	if !NotBlank(" x ") {
		t.Error("NotBlank rejected non-blank value")
	}
}
