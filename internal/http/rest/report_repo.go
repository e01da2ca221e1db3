package rest

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mvbakke/wcag-reviews/internal/model"
	"github.com/pkg/errors"
)

var (
	ErrReportNotFound  = errors.New("report not found")
	ErrDuplicateReport = errors.New("duplicate report")
)

const pgUniqueViolation = "23505"

// CreateReportRepo inserts a pending report. The unique index on
// (review_id, reporter_id) turns a racing duplicate into
// ErrDuplicateReport instead of a second row.
func (api *API) CreateReportRepo(ctx context.Context, report model.Report) error {
	query := `
        INSERT INTO reports (id, review_id, reporter_id, reason, comment)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := api.DB.Exec(ctx, query,
		report.ID, report.ReviewID, report.ReporterID, report.Reason, report.Comment,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateReport
		}
		return err
	}
	return nil
}

func (api *API) ReviewExistsRepo(ctx context.Context, reviewID string) (bool, error) {
	var exists bool
	err := api.DB.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM reviews WHERE id = $1)`, reviewID).Scan(&exists)
	return exists, err
}

const reportViewColumns = `
        rp.id, rp.review_id,
        COALESCE(r.assessment, 'Vurdering slettet'),
        COALESCE(w.name, ''),
        COALESCE(u.username, 'Ukjent'),
        rp.reason, rp.comment, rp.status,
        a.username, rp.review_comment, rp.created_at, rp.updated_at`

const reportViewJoins = `
        FROM reports rp
        LEFT JOIN reviews r ON r.id = rp.review_id
        LEFT JOIN websites w ON w.id = r.website_id
        LEFT JOIN users u ON u.id = rp.reporter_id
        LEFT JOIN users a ON a.id = rp.reviewed_by`

func scanReportView(row pgx.Row) (model.ReportView, error) {
	var view model.ReportView
	err := row.Scan(
		&view.ID, &view.ReviewID,
		&view.ReviewAssessment,
		&view.ReviewWebsiteName,
		&view.ReporterUsername,
		&view.Reason, &view.Comment, &view.Status,
		&view.ReviewedByUsername, &view.ReviewComment, &view.CreatedAt, &view.UpdatedAt,
	)
	return view, err
}

// GetAllReportsRepo lists reports for the admin queue, optionally
// filtered by status, newest first.
func (api *API) GetAllReportsRepo(ctx context.Context, status string) ([]model.ReportView, error) {
	query := `SELECT ` + reportViewColumns + reportViewJoins

	args := []interface{}{}
	if status != "" {
		query += ` WHERE rp.status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY rp.created_at DESC`

	rows, err := api.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying reports: %w", err)
	}
	defer rows.Close()

	var views []model.ReportView
	for rows.Next() {
		view, err := scanReportView(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning report: %w", err)
		}
		views = append(views, view)
	}
	return views, rows.Err()
}

func (api *API) GetReportByIDRepo(ctx context.Context, id string) (model.ReportView, error) {
	query := `SELECT ` + reportViewColumns + reportViewJoins + ` WHERE rp.id = $1`

	view, err := scanReportView(api.DB.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return model.ReportView{}, ErrReportNotFound
	}
	return view, err
}

func (api *API) UpdateReportStatusRepo(ctx context.Context, reportID string, status string, reviewComment string, adminID string) error {
	query := `
        UPDATE reports
        SET status = $2,
            reviewed_by = $3,
            review_comment = COALESCE(NULLIF($4, ''), review_comment),
            updated_at = NOW()
        WHERE id = $1
    `
	result, err := api.DB.Exec(ctx, query, reportID, status, adminID, reviewComment)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrReportNotFound
	}
	return nil
}

// GetReportCountsRepo partitions the report set by status in one scan.
func (api *API) GetReportCountsRepo(ctx context.Context) (model.ReportCounts, error) {
	query := `
        SELECT
            COUNT(*) FILTER (WHERE status = 'pending'),
            COUNT(*) FILTER (WHERE status = 'reviewed'),
            COUNT(*) FILTER (WHERE status = 'resolved'),
            COUNT(*) FILTER (WHERE status = 'dismissed'),
            COUNT(*)
        FROM reports
    `
	var counts model.ReportCounts
	err := api.DB.QueryRow(ctx, query).Scan(
		&counts.Pending, &counts.Reviewed, &counts.Resolved, &counts.Dismissed, &counts.Total,
	)
	if err != nil {
		return model.ReportCounts{}, err
	}
	return counts, nil
}
