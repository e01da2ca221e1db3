package model

import (
	"time"

	"github.com/google/uuid"
)

// Report statuses. pending is initial; resolved and dismissed are
// terminal. A status change never cascades to the reported review.
const (
	ReportPending   = "pending"
	ReportReviewed  = "reviewed"
	ReportResolved  = "resolved"
	ReportDismissed = "dismissed"
)

type Report struct {
	ID            uuid.UUID  `json:"id"`
	ReviewID      uuid.UUID  `json:"review_id"`
	ReporterID    uuid.UUID  `json:"reporter_id"`
	Reason        string     `json:"reason"`
	Comment       string     `json:"comment,omitempty"`
	Status        string     `json:"status"`
	ReviewedBy    *uuid.UUID `json:"reviewed_by,omitempty"`
	ReviewComment string     `json:"review_comment,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type CreateReportRequest struct {
	Reason  string `json:"reason" validate:"required,reportreason"`
	Comment string `json:"comment,omitempty" validate:"max=500"`
}

type UpdateReportStatusRequest struct {
	Status  string `json:"status" validate:"required,reportstatus"`
	Comment string `json:"comment,omitempty" validate:"max=500"`
}

// ReportView is the admin-facing projection: report joined with the
// reported assessment and the usernames involved.
type ReportView struct {
	ID                 uuid.UUID  `json:"id"`
	ReviewID           *uuid.UUID `json:"review_id"`
	ReviewAssessment   string     `json:"review_assessment"`
	ReviewWebsiteName  string     `json:"review_website_name,omitempty"`
	ReporterUsername   string     `json:"reporter_username"`
	Reason             string     `json:"reason"`
	Comment            string     `json:"comment,omitempty"`
	Status             string     `json:"status"`
	ReviewedByUsername *string    `json:"reviewed_by,omitempty"`
	ReviewComment      string     `json:"review_comment,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// ReportCounts partitions the report set by status.
type ReportCounts struct {
	Pending   int `json:"pending"`
	Reviewed  int `json:"reviewed"`
	Resolved  int `json:"resolved"`
	Dismissed int `json:"dismissed"`
	Total     int `json:"total"`
}
