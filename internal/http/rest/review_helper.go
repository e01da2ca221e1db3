package rest

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/mvbakke/wcag-reviews/internal/http/screenshot"
	"github.com/mvbakke/wcag-reviews/internal/model"
	"github.com/mvbakke/wcag-reviews/util"
	"github.com/mvbakke/wcag-reviews/util/values"
)

// validateAssessment returns the first violated rule as a Norwegian
// field-specific message, empty string when the request is valid.
func validateAssessment(req model.AddAssessmentRequest) string {
	if len(strings.TrimSpace(req.WebsiteName)) < 2 {
		return "Nettstedsnavn må være minst 2 tegn"
	}
	if !util.NotBlank(req.WebsiteURL) {
		return "Nettsteds-URL er påkrevd"
	}
	if _, err := util.NormalizeURL(req.WebsiteURL); err != nil {
		return "Ugyldig nettsteds-URL"
	}
	if req.Score < 0 || req.Score > 100 {
		return "Score må være mellom 0 og 100"
	}
	if !util.NotBlank(req.Assessment) {
		return "Vurderingsteksten er påkrevd"
	}
	if len(strings.TrimSpace(req.Assessment)) < 10 {
		return "Vurderingsteksten må være minst 10 tegn"
	}
	return ""
}

// previewImageURL resolves a website preview image. The thumbnail
// service and Cloudinary are both best-effort: any failure degrades to
// the next option, ending at the configured placeholder.
func (api *API) previewImageURL(ctx context.Context, target string) string {
	thumbURL, err := api.Deps.Screenshot.ScreenshotURL(target)
	if err != nil {
		if err != screenshot.ErrNotConfigured {
			log.Println("screenshot url error:", err)
		}
		return api.Config.PlaceholderImageURL
	}

	if api.Deps.Cloudinary != nil {
		hosted, upErr := api.Deps.Cloudinary.UploadImage(ctx, thumbURL, "websites")
		if upErr != nil {
			log.Println("preview image re-host failed, keeping thumbnail url:", upErr)
			return thumbURL
		}
		return hosted
	}

	return thumbURL
}

func (api *API) AddAssessmentHelper(ctx context.Context, req model.AddAssessmentRequest, session *model.Session) (model.AssessmentView, string, string, error) {
	if msg := validateAssessment(req); msg != "" {
		return model.AssessmentView{}, values.Unprocessable, msg, fmt.Errorf("validation failed: %s", msg)
	}

	normalizedURL, err := util.NormalizeURL(req.WebsiteURL)
	if err != nil {
		return model.AssessmentView{}, values.Unprocessable, "Ugyldig nettsteds-URL", err
	}

	website := model.Website{
		ID:          util.GenerateUUID(),
		Name:        strings.TrimSpace(req.WebsiteName),
		URL:         normalizedURL,
		ImageURL:    api.previewImageURL(ctx, normalizedURL),
		Description: strings.TrimSpace(req.Description),
	}

	// Upsert keyed on the unique url index: concurrent submissions for
	// the same new site converge on one row.
	website, err = api.UpsertWebsiteRepo(ctx, website)
	if err != nil {
		return model.AssessmentView{}, values.Error, "Feil ved lagring av vurdering", err
	}

	review := model.Review{
		ID:              util.GenerateUUID(),
		UserID:          session.UserID,
		WebsiteID:       website.ID,
		Score:           req.Score,
		Assessment:      strings.TrimSpace(req.Assessment),
		CriteriaChecked: req.CriteriaChecked,
		Wave:            req.Wave,
	}
	if review.Wave != nil && review.Wave.EvaluatedAt == nil {
		now := time.Now()
		review.Wave.EvaluatedAt = &now
	}

	review, err = api.CreateReviewRepo(ctx, review)
	if err != nil {
		return model.AssessmentView{}, values.Error, "Feil ved lagring av vurdering", err
	}

	view := model.AssessmentView{
		ID:              review.ID,
		WebsiteName:     website.Name,
		WebsiteURL:      website.URL,
		ImageURL:        website.ImageURL,
		Username:        session.Username,
		Score:           review.Score,
		Assessment:      review.Assessment,
		CriteriaChecked: review.CriteriaChecked,
		Wave:            review.Wave,
		Upvotes:         0,
		Downvotes:       0,
		TotalVotes:      0,
		CreatedAt:       review.CreatedAt,
	}
	return view, values.Created, "Vurdering lagret", nil
}
