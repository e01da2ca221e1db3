package rest

import "testing"

func TestOrderClause(t *testing.T) {
	testCases := []struct {
		name   string
		sortBy string
		want   string
	}{
		{"score", "score", "r.score DESC, r.created_at DESC"},
		{"newest", "newest", "r.created_at DESC"},
		{"popular", "popular", "(r.upvotes - r.downvotes) DESC, r.created_at DESC"},
		{"empty falls back to popular", "", "(r.upvotes - r.downvotes) DESC, r.created_at DESC"},
		{"unknown falls back to popular", "oldest", "(r.upvotes - r.downvotes) DESC, r.created_at DESC"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := orderClause(tc.sortBy); got != tc.want {
				t.Errorf("orderClause(%q) = %q; want %q", tc.sortBy, got, tc.want)
			}
		})
	}
}

func TestSearchPattern(t *testing.T) {
	testCases := []struct {
		name  string
		query string
		want  string
	}{
		{"plain word", "kommune", "%kommune%"},
		{"percent escaped", "100%", `%100\%%`},
		{"underscore escaped", "my_site", `%my\_site%`},
		{"backslash escaped", `a\b`, `%a\\b%`},
		{"empty query matches all", "", "%%"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := searchPattern(tc.query); got != tc.want {
				t.Errorf("searchPattern(%q) = %q; want %q", tc.query, got, tc.want)
			}
		})
	}
}
