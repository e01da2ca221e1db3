package rest

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/mvbakke/wcag-reviews/util"
	"github.com/mvbakke/wcag-reviews/util/tracing"
	"github.com/mvbakke/wcag-reviews/util/values"
)

type ServerResponse struct {
	Message    string      `json:"message"`
	Status     string      `json:"status"`
	StatusCode int         `json:"code"`
	Data       interface{} `json:"data,omitempty"`
}

// respondWithError logs the underlying error against the request id
// and returns the user-facing response. Internal failures always
// surface the generic message, never err itself.
func respondWithError(err error, message string, status string, tc *tracing.Context) *ServerResponse {
	if err != nil {
		log.Printf("[%s] %s: %v", tc.RequestID, message, err)
	}
	if status == values.Error {
		message = values.SystemErr
	}
	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

// writeErrorResponse writes directly, for middleware that runs before
// the Handler adapter.
func writeErrorResponse(w http.ResponseWriter, err error, status string, message string) {
	if err != nil {
		log.Printf("%s: %v", message, err)
	}
	resp := ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
	respByte, marshalErr := json.Marshal(resp)
	if marshalErr != nil {
		http.Error(w, message, resp.StatusCode)
		return
	}
	writeJSONResponse(w, respByte, resp.StatusCode)
}

func writeJSONResponse(w http.ResponseWriter, body []byte, statusCode int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}
