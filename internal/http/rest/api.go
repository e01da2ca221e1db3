package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mvbakke/wcag-reviews/config"
	deps "github.com/mvbakke/wcag-reviews/internal/deps"
	"github.com/mvbakke/wcag-reviews/util/values"
)

const (
	defaultIdleTimeout    = time.Minute
	defaultReadTimeout    = 5 * time.Second
	defaultWriteTimeout   = 10 * time.Second
	defaultShutdownPeriod = 30 * time.Second
)

type Handler func(w http.ResponseWriter, r *http.Request) *ServerResponse

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h(w, r)
	if resp == nil {
		// handler already wrote (redirects, websocket upgrades)
		return
	}
	respByte, err := json.Marshal(resp)
	if err != nil {
		writeErrorResponse(w, err, values.Error, "unable to marshal server response")
		return
	}
	writeJSONResponse(w, respByte, resp.StatusCode)
}

type API struct {
	Server *http.Server
	Config *config.Config
	Deps   *deps.Dependencies
	DB     *pgxpool.Pool
}

func (api *API) Serve() error {
	api.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", api.Config.Port),
		IdleTimeout:  defaultIdleTimeout,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		Handler:      api.setUpServerHandler(),
	}
	return api.Server.ListenAndServe()
}

func (api *API) setUpServerHandler() http.Handler {
	mux := chi.NewRouter()
	mux.Use(RequestTracing)

	mux.Method(http.MethodGet, "/", Handler(api.ListAssessments))
	mux.Method(http.MethodGet, "/search", Handler(api.ListAssessments))
	mux.Method(http.MethodGet, "/assessment/{assessmentID}", Handler(api.GetAssessment))
	mux.Method(http.MethodGet, "/faq", Handler(api.GetFAQ))
	mux.Method(http.MethodGet, "/help", Handler(api.GetHelp))
	mux.Get("/ws/activity", api.Deps.Feed.HandleConnections)

	mux.Mount("/auth", api.AuthRoutes())

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodPost, "/add", Handler(api.AddAssessment))
		r.Method(http.MethodPost, "/vote/{reviewID}", Handler(api.Vote))
		r.Method(http.MethodPost, "/report/{reviewID}", Handler(api.CreateReport))
	})

	mux.Mount("/admin", api.AdminRoutes())

	return mux
}

func (a *API) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownPeriod)
	defer cancel()

	err := a.Server.Shutdown(ctx)
	if err != nil {
		return err
	}
	return nil
}
