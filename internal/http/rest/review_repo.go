package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mvbakke/wcag-reviews/internal/model"
	"github.com/pkg/errors"
)

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrWebsiteNotFound = errors.New("website not found")
)

// orderClause maps a sort mode to its ORDER BY expression. Unknown
// modes fall back to popular (vote total, newest first on ties).
func orderClause(sortBy string) string {
	switch sortBy {
	case "score":
		return "r.score DESC, r.created_at DESC"
	case "newest":
		return "r.created_at DESC"
	default: // popular
		return "(r.upvotes - r.downvotes) DESC, r.created_at DESC"
	}
}

// searchPattern escapes ILIKE metacharacters in a user query and wraps
// it for substring matching.
func searchPattern(q string) string {
	q = strings.ReplaceAll(q, `\`, `\\`)
	q = strings.ReplaceAll(q, `%`, `\%`)
	q = strings.ReplaceAll(q, `_`, `\_`)
	return "%" + q + "%"
}

const assessmentColumns = `
        r.id, w.name, w.url, w.image_url, u.username, r.score, r.assessment,
        r.criteria_checked,
        r.wave_errors, r.wave_alerts, r.wave_features, r.wave_structural, r.wave_aria,
        r.wave_raw, r.wave_evaluated_at,
        r.upvotes, r.downvotes, v.vote, r.created_at`

func scanAssessment(row pgx.Row) (model.AssessmentView, error) {
	var (
		view        model.AssessmentView
		wave        model.WaveMetrics
		waveRaw     []byte
		evaluatedAt *time.Time
	)
	err := row.Scan(
		&view.ID, &view.WebsiteName, &view.WebsiteURL, &view.ImageURL,
		&view.Username, &view.Score, &view.Assessment,
		&view.CriteriaChecked,
		&wave.Errors, &wave.Alerts, &wave.Features, &wave.StructuralElements, &wave.HTML5AndARIA,
		&waveRaw, &evaluatedAt,
		&view.Upvotes, &view.Downvotes, &view.UserVote, &view.CreatedAt,
	)
	if err != nil {
		return model.AssessmentView{}, err
	}

	view.TotalVotes = view.Upvotes - view.Downvotes
	if evaluatedAt != nil {
		wave.RawResults = json.RawMessage(waveRaw)
		wave.EvaluatedAt = evaluatedAt
		view.Wave = &wave
	}
	return view, nil
}

// ListAssessmentsRepo streams the review feed joined with website,
// author and the requesting user's own vote.
func (api *API) ListAssessmentsRepo(ctx context.Context, params model.ListAssessmentsParams) ([]model.AssessmentView, error) {
	baseQuery := `
        SELECT ` + assessmentColumns + `
        FROM reviews r
        JOIN websites w ON w.id = r.website_id
        JOIN users u ON u.id = r.user_id
        LEFT JOIN review_votes v ON v.review_id = r.id AND v.user_id = $1
    `

	args := []interface{}{params.UserID}
	argCount := 1

	whereClause := ""
	if params.SearchQuery != "" {
		argCount++
		whereClause = fmt.Sprintf(
			` WHERE (w.name ILIKE $%d OR w.url ILIKE $%d OR r.assessment ILIKE $%d)`,
			argCount, argCount, argCount,
		)
		args = append(args, searchPattern(params.SearchQuery))
	}

	query := fmt.Sprintf("%s %s ORDER BY %s", baseQuery, whereClause, orderClause(params.SortBy))

	rows, err := api.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying assessments: %w", err)
	}
	defer rows.Close()

	var views []model.AssessmentView
	for rows.Next() {
		view, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning assessment: %w", err)
		}
		views = append(views, view)
	}
	return views, rows.Err()
}

func (api *API) GetAssessmentByIDRepo(ctx context.Context, id string, userID *string) (model.AssessmentView, error) {
	query := `
        SELECT ` + assessmentColumns + `
        FROM reviews r
        JOIN websites w ON w.id = r.website_id
        JOIN users u ON u.id = r.user_id
        LEFT JOIN review_votes v ON v.review_id = r.id AND v.user_id = $2
        WHERE r.id = $1
    `
	view, err := scanAssessment(api.DB.QueryRow(ctx, query, id, userID))
	if err == pgx.ErrNoRows {
		return model.AssessmentView{}, ErrReviewNotFound
	}
	return view, err
}

// UpsertWebsiteRepo resolves a website by unique url, creating it on
// first sight. The no-op DO UPDATE makes RETURNING yield the existing
// row on conflict.
func (api *API) UpsertWebsiteRepo(ctx context.Context, website model.Website) (model.Website, error) {
	query := `
        INSERT INTO websites (id, name, url, image_url, description)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (url) DO UPDATE SET name = websites.name
        RETURNING id, name, url, image_url, description, created_at
    `
	var out model.Website
	err := api.DB.QueryRow(ctx, query,
		website.ID, website.Name, website.URL, website.ImageURL, website.Description,
	).Scan(&out.ID, &out.Name, &out.URL, &out.ImageURL, &out.Description, &out.CreatedAt)
	if err != nil {
		return model.Website{}, err
	}
	return out, nil
}

func (api *API) CreateReviewRepo(ctx context.Context, review model.Review) (model.Review, error) {
	var (
		waveErrors, waveAlerts, waveFeatures, waveStructural, waveARIA int
		waveRaw                                                        = []byte(`{}`)
		evaluatedAt                                                    *time.Time
	)
	if review.Wave != nil {
		waveErrors = review.Wave.Errors
		waveAlerts = review.Wave.Alerts
		waveFeatures = review.Wave.Features
		waveStructural = review.Wave.StructuralElements
		waveARIA = review.Wave.HTML5AndARIA
		if len(review.Wave.RawResults) > 0 {
			waveRaw = review.Wave.RawResults
		}
		evaluatedAt = review.Wave.EvaluatedAt
	}

	criteria := review.CriteriaChecked
	if criteria == nil {
		criteria = []string{}
	}

	query := `
        INSERT INTO reviews (
            id, user_id, website_id, score, assessment, criteria_checked,
            wave_errors, wave_alerts, wave_features, wave_structural, wave_aria,
            wave_raw, wave_evaluated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id, created_at
    `
	err := api.DB.QueryRow(ctx, query,
		review.ID, review.UserID, review.WebsiteID, review.Score, review.Assessment, criteria,
		waveErrors, waveAlerts, waveFeatures, waveStructural, waveARIA,
		waveRaw, evaluatedAt,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return model.Review{}, err
	}
	return review, nil
}
