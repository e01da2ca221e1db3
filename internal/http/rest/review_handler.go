package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mvbakke/wcag-reviews/internal/model"
	"github.com/mvbakke/wcag-reviews/util"
	"github.com/mvbakke/wcag-reviews/util/tracing"
	"github.com/mvbakke/wcag-reviews/util/values"
	"github.com/mvbakke/wcag-reviews/util/websockets"
)

// ListAssessments serves the review feed for both GET / and
// GET /search?q=&sort=. Login is optional: a valid session only adds
// the caller's own vote to each row.
func (api *API) ListAssessments(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	params := model.ListAssessmentsParams{
		SearchQuery: r.URL.Query().Get("q"),
		SortBy:      r.URL.Query().Get("sort"),
	}
	if session, err := api.sessionFromRequest(r); err == nil {
		params.UserID = &session.UserID
	}

	assessments, err := api.ListAssessmentsRepo(r.Context(), params)
	if err != nil {
		return respondWithError(err, "Feil ved henting av vurderinger", values.Error, &tc)
	}
	if assessments == nil {
		assessments = []model.AssessmentView{}
	}

	return &ServerResponse{
		Message:    "Vurderinger hentet",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       assessments,
	}
}

func (api *API) GetAssessment(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := util.StringToUUID(chi.URLParam(r, "assessmentID"))
	if err != nil {
		return respondWithError(err, "Vurdering ikke funnet", values.NotFound, &tc)
	}

	var userID *string
	if session, sessErr := api.sessionFromRequest(r); sessErr == nil {
		s := session.UserID.String()
		userID = &s
	}

	assessment, err := api.GetAssessmentByIDRepo(r.Context(), id.String(), userID)
	if err == ErrReviewNotFound {
		return respondWithError(nil, "Vurdering ikke funnet", values.NotFound, &tc)
	}
	if err != nil {
		return respondWithError(err, "Feil ved henting av vurdering", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Vurdering hentet",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       assessment,
	}
}

func (api *API) AddAssessment(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	session, err := sessionFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "Du må være logget inn for å legge til en vurdering", values.NotAuthorised, &tc)
	}

	var req model.AddAssessmentRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	assessment, status, message, err := api.AddAssessmentHelper(r.Context(), req, session)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	api.Deps.Feed.Publish(websockets.EventReviewCreated, assessment)

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       assessment,
	}
}
