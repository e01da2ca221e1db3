package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// WaveMetrics is a snapshot of an external WAVE evaluation, stored
// verbatim. Nothing in this service recomputes it.
type WaveMetrics struct {
	Errors             int             `json:"errors"`
	Alerts             int             `json:"alerts"`
	Features           int             `json:"features"`
	StructuralElements int             `json:"structural_elements"`
	HTML5AndARIA       int             `json:"html5_and_aria"`
	RawResults         json.RawMessage `json:"raw_results,omitempty"`
	EvaluatedAt        *time.Time      `json:"evaluated_at,omitempty"`
}

type Review struct {
	ID              uuid.UUID    `json:"id"`
	UserID          uuid.UUID    `json:"user_id"`
	WebsiteID       uuid.UUID    `json:"website_id"`
	Score           int          `json:"score"`
	Assessment      string       `json:"assessment"`
	CriteriaChecked []string     `json:"criteria_checked,omitempty"`
	Wave            *WaveMetrics `json:"wave,omitempty"`
	Upvotes         int          `json:"upvotes"`
	Downvotes       int          `json:"downvotes"`
	CreatedAt       time.Time    `json:"created_at"`
}

// AddAssessmentRequest carries the submission form. Norwegian
// field-specific messages come out of the helper's validation, the
// validate tags are the structural backstop.
type AddAssessmentRequest struct {
	WebsiteName     string       `json:"website_name" validate:"required,min=2,max=100"`
	WebsiteURL      string       `json:"website_url" validate:"required"`
	Description     string       `json:"description,omitempty"`
	Score           int          `json:"score" validate:"wcagscore"`
	Assessment      string       `json:"assessment" validate:"required,min=10"`
	CriteriaChecked []string     `json:"criteria_checked,omitempty"`
	Wave            *WaveMetrics `json:"wave,omitempty"`
}

// AssessmentView is the denormalized projection used by listings and
// the detail page: review + website + author + the requesting user's
// own vote, if any.
type AssessmentView struct {
	ID              uuid.UUID    `json:"id"`
	WebsiteName     string       `json:"website_name"`
	WebsiteURL      string       `json:"website_url"`
	ImageURL        string       `json:"image_url"`
	Username        string       `json:"username"`
	Score           int          `json:"score"`
	Assessment      string       `json:"assessment"`
	CriteriaChecked []string     `json:"criteria_checked,omitempty"`
	Wave            *WaveMetrics `json:"wave,omitempty"`
	Upvotes         int          `json:"upvotes"`
	Downvotes       int          `json:"downvotes"`
	TotalVotes      int          `json:"total_votes"`
	UserVote        *string      `json:"user_vote"`
	CreatedAt       time.Time    `json:"created_at"`
}

// ListAssessmentsParams filters and orders the review feed.
type ListAssessmentsParams struct {
	UserID      *uuid.UUID
	SearchQuery string
	SortBy      string
}
