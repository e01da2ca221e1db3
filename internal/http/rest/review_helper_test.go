package rest

import (
	"testing"

	"github.com/mvbakke/wcag-reviews/internal/model"
)

func validAssessmentRequest() model.AddAssessmentRequest {
	return model.AddAssessmentRequest{
		WebsiteName: "Eksempelsiden",
		WebsiteURL:  "https://eksempel.no",
		Score:       72,
		Assessment:  "God kontrast, men skjemafeltene mangler ledetekster.",
	}
}

func TestValidateAssessment(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*model.AddAssessmentRequest)
		wantMsg string
	}{
		{"valid request", func(r *model.AddAssessmentRequest) {}, ""},
		{"short website name", func(r *model.AddAssessmentRequest) { r.WebsiteName = "a" }, "Nettstedsnavn må være minst 2 tegn"},
		{"blank website name", func(r *model.AddAssessmentRequest) { r.WebsiteName = "   " }, "Nettstedsnavn må være minst 2 tegn"},
		{"missing url", func(r *model.AddAssessmentRequest) { r.WebsiteURL = "" }, "Nettsteds-URL er påkrevd"},
		{"invalid url", func(r *model.AddAssessmentRequest) { r.WebsiteURL = "http://" }, "Ugyldig nettsteds-URL"},
		{"score below range", func(r *model.AddAssessmentRequest) { r.Score = -1 }, "Score må være mellom 0 og 100"},
		{"score above range", func(r *model.AddAssessmentRequest) { r.Score = 101 }, "Score må være mellom 0 og 100"},
		{"score at lower bound", func(r *model.AddAssessmentRequest) { r.Score = 0 }, ""},
		{"score at upper bound", func(r *model.AddAssessmentRequest) { r.Score = 100 }, ""},
		{"missing assessment", func(r *model.AddAssessmentRequest) { r.Assessment = "" }, "Vurderingsteksten er påkrevd"},
		{"short assessment", func(r *model.AddAssessmentRequest) { r.Assessment = "for kort" }, "Vurderingsteksten må være minst 10 tegn"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validAssessmentRequest()
			tc.mutate(&req)

			got := validateAssessment(req)
			if got != tc.wantMsg {
				t.Errorf("validateAssessment() = %q; want %q", got, tc.wantMsg)
			}
		})
	}
}

// Bare domains are accepted; scheme defaulting happens at
// normalization, not validation.
func TestValidateAssessmentBareDomain(t *testing.T) {
	req := validAssessmentRequest()
	req.WebsiteURL = "eksempel.no/om-oss"

	if got := validateAssessment(req); got != "" {
		t.Errorf("validateAssessment() = %q; want valid", got)
	}
}
