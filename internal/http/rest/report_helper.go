package rest

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/mvbakke/wcag-reviews/internal/model"
	"github.com/mvbakke/wcag-reviews/util"
	"github.com/mvbakke/wcag-reviews/util/values"
	"github.com/pkg/errors"
)

var (
	errInvalidReason = errors.New("invalid report reason")
	errInvalidStatus = errors.New("invalid report status")
)

// validReportStatuses is the full status machine: pending is initial,
// resolved and dismissed are terminal. Any listed status is reachable
// from any prior one; an admin can resolve directly from pending.
func validReportStatus(status string) bool {
	switch status {
	case model.ReportPending, model.ReportReviewed, model.ReportResolved, model.ReportDismissed:
		return true
	}
	return false
}

func validReportReason(reason string) bool {
	switch reason {
	case "inappropriate", "incorrect", "spam", "other":
		return true
	}
	return false
}

func (api *API) CreateReportHelper(ctx context.Context, reviewID uuid.UUID, req model.CreateReportRequest, session *model.Session) (string, string, error) {
	if !validReportReason(req.Reason) {
		return values.Unprocessable, "Rapportårsak er påkrevd", errInvalidReason
	}

	exists, err := api.ReviewExistsRepo(ctx, reviewID.String())
	if err != nil {
		return values.Error, "Feil ved innsending av rapport", err
	}
	if !exists {
		return values.NotFound, "Vurdering ikke funnet", ErrReviewNotFound
	}

	report := model.Report{
		ID:         util.GenerateUUID(),
		ReviewID:   reviewID,
		ReporterID: session.UserID,
		Reason:     req.Reason,
		Comment:    strings.TrimSpace(req.Comment),
	}

	err = api.CreateReportRepo(ctx, report)
	if err == ErrDuplicateReport {
		return values.Conflict, "Du har allerede rapportert denne vurderingen", err
	}
	if err != nil {
		return values.Error, "Feil ved innsending av rapport", err
	}

	return values.Created, "Rapport sendt inn", nil
}

func (api *API) UpdateReportStatusHelper(ctx context.Context, reportID string, req model.UpdateReportStatusRequest, adminID uuid.UUID) (string, string, error) {
	if !validReportStatus(req.Status) {
		return values.Unprocessable, "Ugyldig status", errInvalidStatus
	}

	// Resolving a report does not touch the reported review; removal
	// stays a manual moderator step.
	err := api.UpdateReportStatusRepo(ctx, reportID, req.Status, strings.TrimSpace(req.Comment), adminID.String())
	if err == ErrReportNotFound {
		return values.NotFound, "Rapport ikke funnet", err
	}
	if err != nil {
		return values.Error, "Feil ved oppdatering av rapport", err
	}

	return values.Success, "Rapport oppdatert", nil
}
