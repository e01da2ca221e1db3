package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mvbakke/wcag-reviews/internal/model"
	"github.com/mvbakke/wcag-reviews/util"
	"github.com/mvbakke/wcag-reviews/util/values"
)

func TestRequireLoginRedirectsNavigation(t *testing.T) {
	api := testAPI()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler called without a session")
	})

	r := httptest.NewRequest(http.MethodGet, "/add", nil)
	r.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()

	api.RequireLogin(next).ServeHTTP(w, r)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d; want %d", w.Code, http.StatusFound)
	}
	if loc := w.Header().Get("Location"); loc != "/login?redirect=%2Fadd" {
		t.Errorf("Location = %q; want /login?redirect=%%2Fadd", loc)
	}
}

func TestRequireLoginAnswersJSONWith401(t *testing.T) {
	api := testAPI()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler called without a session")
	})

	r := httptest.NewRequest(http.MethodPost, "/vote/abc", nil)
	r.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()

	api.RequireLogin(next).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d; want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestRequireLoginPassesSession(t *testing.T) {
	api := testAPI()
	user := model.User{ID: util.GenerateUUID(), Username: "kari", Role: values.RoleUser}

	token, expiresAt, err := api.createSessionToken(user)
	if err != nil {
		t.Fatalf("createSessionToken returned error %v", err)
	}

	var got *model.Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := sessionFromContext(r.Context())
		if err != nil {
			t.Fatalf("sessionFromContext returned error %v", err)
		}
		got = session
	})

	r := httptest.NewRequest(http.MethodPost, "/add", nil)
	r.AddCookie(&http.Cookie{Name: values.SessionCookie, Value: token, Expires: expiresAt})
	w := httptest.NewRecorder()

	api.RequireLogin(next).ServeHTTP(w, r)

	if got == nil {
		t.Fatal("next handler never ran")
	}
	if got.UserID != user.ID || got.Username != user.Username {
		t.Errorf("session = %+v; want identity of %q", got, user.Username)
	}
}

func TestRequireLoginRejectsExpiredCookie(t *testing.T) {
	api := testAPI()
	api.Config.SessionExpires = "-1h"

	token, _, err := api.createSessionToken(model.User{ID: util.GenerateUUID(), Username: "ola"})
	if err != nil {
		t.Fatalf("createSessionToken returned error %v", err)
	}
	api.Config.SessionExpires = "24h"

	r := httptest.NewRequest(http.MethodGet, "/add", nil)
	r.Header.Set("Accept", "application/json")
	r.AddCookie(&http.Cookie{Name: values.SessionCookie, Value: token})
	w := httptest.NewRecorder()

	api.RequireLogin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler called with an expired session")
	})).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d; want %d", w.Code, http.StatusUnauthorized)
	}
}
