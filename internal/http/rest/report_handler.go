package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mvbakke/wcag-reviews/internal/model"
	"github.com/mvbakke/wcag-reviews/util"
	"github.com/mvbakke/wcag-reviews/util/tracing"
	"github.com/mvbakke/wcag-reviews/util/values"
)

// AdminRoutes is the moderation surface. Every route re-checks the
// admin role against the database, not the cookie.
func (api *API) AdminRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Use(api.RequireAdmin)
		r.Method(http.MethodGet, "/reports", Handler(api.GetAllReports))
		r.Method(http.MethodGet, "/reports/counts", Handler(api.GetReportCounts))
		r.Method(http.MethodGet, "/reports/{reportID}", Handler(api.GetReportByID))
		r.Method(http.MethodPost, "/reports/{reportID}/update", Handler(api.UpdateReportStatus))
	})

	return mux
}

func (api *API) CreateReport(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	reviewID, err := util.StringToUUID(chi.URLParam(r, "reviewID"))
	if err != nil {
		return respondWithError(err, "Vurdering ikke funnet", values.NotFound, &tc)
	}

	var req model.CreateReportRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	session, err := sessionFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "Du må være logget inn for å rapportere", values.NotAuthorised, &tc)
	}

	status, message, err := api.CreateReportHelper(r.Context(), reviewID, req, session)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func (api *API) GetAllReports(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	status := r.URL.Query().Get("status")
	if status != "" && !validReportStatus(status) {
		return respondWithError(nil, "Ugyldig status", values.BadRequestBody, &tc)
	}

	reports, err := api.GetAllReportsRepo(r.Context(), status)
	if err != nil {
		return respondWithError(err, "Feil ved henting av rapporter", values.Error, &tc)
	}
	if reports == nil {
		reports = []model.ReportView{}
	}

	return &ServerResponse{
		Message:    "Rapporter hentet",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       reports,
	}
}

func (api *API) GetReportCounts(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	counts, err := api.GetReportCountsRepo(r.Context())
	if err != nil {
		return respondWithError(err, "Feil ved henting av rapporter", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Rapporttelling hentet",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       counts,
	}
}

func (api *API) GetReportByID(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	reportID := chi.URLParam(r, "reportID")
	if _, err := util.StringToUUID(reportID); err != nil {
		return respondWithError(err, "Rapport ikke funnet", values.NotFound, &tc)
	}

	report, err := api.GetReportByIDRepo(r.Context(), reportID)
	if err == ErrReportNotFound {
		return respondWithError(nil, "Rapport ikke funnet", values.NotFound, &tc)
	}
	if err != nil {
		return respondWithError(err, "Feil ved henting av rapport", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Rapport hentet",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       report,
	}
}

func (api *API) UpdateReportStatus(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	reportID := chi.URLParam(r, "reportID")
	if _, err := util.StringToUUID(reportID); err != nil {
		return respondWithError(err, "Rapport ikke funnet", values.NotFound, &tc)
	}

	var req model.UpdateReportStatusRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	session, err := sessionFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "Du må være logget inn", values.NotAuthorised, &tc)
	}

	status, message, err := api.UpdateReportStatusHelper(r.Context(), reportID, req, session.UserID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}
