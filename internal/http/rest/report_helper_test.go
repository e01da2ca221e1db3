package rest

import (
	"testing"

	"github.com/mvbakke/wcag-reviews/internal/model"
)

func TestValidReportStatus(t *testing.T) {
	testCases := []struct {
		status string
		want   bool
	}{
		{model.ReportPending, true},
		{model.ReportReviewed, true},
		{model.ReportResolved, true},
		{model.ReportDismissed, true},
		{"", false},
		{"open", false},
		{"PENDING", false},
	}

	for _, tc := range testCases {
		t.Run("status "+tc.status, func(t *testing.T) {
			if got := validReportStatus(tc.status); got != tc.want {
				t.Errorf("validReportStatus(%q) = %v; want %v", tc.status, got, tc.want)
			}
		})
	}
}

func TestValidReportReason(t *testing.T) {
	testCases := []struct {
		reason string
		want   bool
	}{
		{"inappropriate", true},
		{"incorrect", true},
		{"spam", true},
		{"other", true},
		{"", false},
		{"harassment", false},
	}

	for _, tc := range testCases {
		t.Run("reason "+tc.reason, func(t *testing.T) {
			if got := validReportReason(tc.reason); got != tc.want {
				t.Errorf("validReportReason(%q) = %v; want %v", tc.reason, got, tc.want)
			}
		})
	}
}
