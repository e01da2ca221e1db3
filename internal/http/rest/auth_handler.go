package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mvbakke/wcag-reviews/internal/model"
	"github.com/mvbakke/wcag-reviews/util"
	"github.com/mvbakke/wcag-reviews/util/tracing"
	"github.com/mvbakke/wcag-reviews/util/values"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

func (api *API) AuthRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodPost, "/register", Handler(api.Register))
	mux.Method(http.MethodPost, "/login", Handler(api.Login))
	mux.Method(http.MethodGet, "/logout", Handler(api.Logout))
	mux.Method(http.MethodPost, "/google/create", Handler(api.CreateAccountWithGoogle))
	mux.Method(http.MethodPost, "/google/login", Handler(api.LoginWithGoogle))
	return mux
}

func (api *API) googleOauthConfig() *oauth2.Config {
	return &oauth2.Config{
		RedirectURL:  api.Config.GoogleRedirectURL,
		ClientID:     api.Config.GoogleClientID,
		ClientSecret: api.Config.GoogleClientSecret,
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
		Endpoint:     google.Endpoint,
	}
}

// setSessionCookie installs the signed session cookie: httpOnly, 24h.
func (api *API) setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     values.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (api *API) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     values.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (api *API) Register(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.RegisterRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	user, status, message, err := api.CreateNewUser(r.Context(), req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	token, expiresAt, err := api.createSessionToken(user)
	if err != nil {
		return respondWithError(err, "Feil ved registrering", values.Error, &tc)
	}
	api.setSessionCookie(w, token, expiresAt)

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data: model.LoginResponse{
			User: &model.LoginUserResponse{
				ID:       user.ID,
				Username: user.Username,
				Role:     user.Role,
			},
		},
	}
}

func (api *API) Login(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.LoginRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	user, status, message, err := api.LoginUser(r.Context(), req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	token, expiresAt, err := api.createSessionToken(user)
	if err != nil {
		return respondWithError(err, "Feil ved innlogging", values.Error, &tc)
	}
	api.setSessionCookie(w, token, expiresAt)

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data: model.LoginResponse{
			User: &model.LoginUserResponse{
				ID:       user.ID,
				Username: user.Username,
				Role:     user.Role,
			},
			Redirect: util.SafeRedirectPath(req.Redirect),
		},
	}
}

func (api *API) Logout(w http.ResponseWriter, r *http.Request) *ServerResponse {
	api.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
	return nil
}

type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}

func (api *API) fetchGoogleUserInfo(ctx context.Context, accessToken string) (*googleUserInfo, error) {
	token := &oauth2.Token{AccessToken: accessToken}
	client := api.googleOauthConfig().Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var userInfo googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, err
	}
	return &userInfo, nil
}

func (api *API) CreateAccountWithGoogle(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req struct {
		AccessToken string `json:"access_token"`
	}
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	userInfo, err := api.fetchGoogleUserInfo(r.Context(), req.AccessToken)
	if err != nil {
		return respondWithError(err, "failed to get user info", values.Error, &tc)
	}

	if _, err = api.GetUserByEmail(r.Context(), userInfo.Email); err == nil {
		return respondWithError(nil, "Brukeren finnes allerede", values.Conflict, &tc)
	}

	username, err := api.availableUsername(r.Context(), userInfo.Email)
	if err != nil {
		return respondWithError(err, "Feil ved registrering", values.Error, &tc)
	}

	user := model.User{
		ID:           util.GenerateUUID(),
		Username:     username,
		Email:        &userInfo.Email,
		Role:         values.RoleUser,
		AuthProvider: "google",
	}
	if err := api.CreateNewUserRepo(r.Context(), user); err != nil {
		return respondWithError(err, "Feil ved registrering", values.Error, &tc)
	}

	token, expiresAt, err := api.createSessionToken(user)
	if err != nil {
		return respondWithError(err, "failed to create token", values.Error, &tc)
	}
	api.setSessionCookie(w, token, expiresAt)

	return &ServerResponse{
		Message:    "Bruker opprettet",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data: model.LoginResponse{
			User: &model.LoginUserResponse{
				ID:       user.ID,
				Username: user.Username,
				Role:     user.Role,
			},
		},
	}
}

func (api *API) LoginWithGoogle(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req struct {
		AccessToken string `json:"access_token"`
	}
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	userInfo, err := api.fetchGoogleUserInfo(r.Context(), req.AccessToken)
	if err != nil {
		return respondWithError(err, "failed to get user info", values.Error, &tc)
	}

	user, err := api.GetUserByEmail(r.Context(), userInfo.Email)
	if err != nil {
		return respondWithError(err, "Bruker ikke funnet", values.NotFound, &tc)
	}

	token, expiresAt, err := api.createSessionToken(user)
	if err != nil {
		return respondWithError(err, "failed to create token", values.Error, &tc)
	}
	api.setSessionCookie(w, token, expiresAt)

	return &ServerResponse{
		Message:    "Innlogging vellykket",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data: model.LoginResponse{
			User: &model.LoginUserResponse{
				ID:       user.ID,
				Username: user.Username,
				Role:     user.Role,
			},
		},
	}
}

// availableUsername derives a username from the email local part,
// suffixing a counter until it is free.
func (api *API) availableUsername(ctx context.Context, email string) (string, error) {
	base := strings.ToLower(strings.SplitN(email, "@", 2)[0])
	if len(base) < 2 {
		base = "bruker"
	}

	candidate := base
	for i := 2; i <= 20; i++ {
		exists, err := api.UsernameExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}
	return base + util.GenerateUUID().String()[:8], nil
}
