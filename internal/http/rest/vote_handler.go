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

func (api *API) Vote(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	reviewID, err := util.StringToUUID(chi.URLParam(r, "reviewID"))
	if err != nil {
		return respondWithError(err, "Vurdering ikke funnet", values.NotFound, &tc)
	}

	var req model.VoteRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "Ugyldig stemme", values.BadRequestBody, &tc)
	}

	session, err := sessionFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "Du må være logget inn for å stemme", values.NotAuthorised, &tc)
	}

	result, err := api.VoteOnReviewRepo(r.Context(), reviewID, session.UserID, req.Vote)
	if err == ErrReviewNotFound {
		return respondWithError(nil, "Vurdering ikke funnet", values.NotFound, &tc)
	}
	if err != nil {
		return respondWithError(err, "Feil ved stemme", values.Error, &tc)
	}

	api.Deps.Feed.Publish(websockets.EventVoteUpdated, map[string]interface{}{
		"review_id":  reviewID,
		"upvotes":    result.Upvotes,
		"downvotes":  result.Downvotes,
		"totalVotes": result.TotalVotes,
	})

	return &ServerResponse{
		Message:    "Stemme registrert",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       result,
	}
}
