package util

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/mvbakke/wcag-reviews/util/values"
	"github.com/pkg/errors"
)

var ErrInvalidURL = errors.New("ugyldig URL")

func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

func IsURL(value string) bool {
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}

	return u.Scheme != "" && u.Host != ""
}

// NormalizeURL canonicalizes a website address so that reviews of the
// same site land on the same websites row: scheme defaults to https,
// host is lowercased, fragments and trailing slashes are dropped.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidURL
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", ErrInvalidURL
	}
	if u.Host == "" {
		return "", ErrInvalidURL
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.Path = strings.TrimRight(u.Path, "/")

	return u.String(), nil
}

// SafeRedirectPath restricts caller-supplied redirect targets to
// same-origin relative paths. Anything else falls back to "/".
func SafeRedirectPath(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		return "/"
	}
	// "//host" and "/\host" are treated as absolute by browsers
	if strings.HasPrefix(path, "//") || strings.HasPrefix(path, "/\\") {
		return "/"
	}
	return path
}

// WantsJSON distinguishes programmatic requests from normal
// navigation so auth failures can answer 401 JSON instead of a
// redirect to the login page.
func WantsJSON(r *http.Request) bool {
	if strings.EqualFold(r.Header.Get(values.HeaderRequestedWith), "XMLHttpRequest") {
		return true
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json")
}
