package rest

import (
	"testing"
	"time"

	"github.com/mvbakke/wcag-reviews/config"
	"github.com/mvbakke/wcag-reviews/internal/model"
	"github.com/mvbakke/wcag-reviews/util"
	"github.com/mvbakke/wcag-reviews/util/values"
)

func testAPI() *API {
	return &API{
		Config: &config.Config{
			SessionSecret:  "test-secret-not-for-production",
			SessionExpires: "24h",
		},
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	api := testAPI()
	user := model.User{
		ID:       util.GenerateUUID(),
		Username: "kari",
		Role:     values.RoleAdmin,
	}

	token, expiresAt, err := api.createSessionToken(user)
	if err != nil {
		t.Fatalf("createSessionToken returned error %v", err)
	}
	if remaining := time.Until(expiresAt); remaining < 23*time.Hour {
		t.Errorf("expiry %v too soon, want roughly 24h out", expiresAt)
	}

	session, err := api.verifySessionToken(token)
	if err != nil {
		t.Fatalf("verifySessionToken returned error %v", err)
	}
	if session.UserID != user.ID {
		t.Errorf("session user id = %v; want %v", session.UserID, user.ID)
	}
	if session.Username != user.Username {
		t.Errorf("session username = %q; want %q", session.Username, user.Username)
	}
	if session.Role != user.Role {
		t.Errorf("session role = %q; want %q", session.Role, user.Role)
	}
}

func TestVerifySessionTokenRejects(t *testing.T) {
	api := testAPI()
	user := model.User{ID: util.GenerateUUID(), Username: "ola", Role: values.RoleUser}

	token, _, err := api.createSessionToken(user)
	if err != nil {
		t.Fatalf("createSessionToken returned error %v", err)
	}

	testCases := []struct {
		name  string
		token string
		api   *API
	}{
		{"garbage token", "not-a-jwt", api},
		{"empty token", "", api},
		{"tampered token", token + "x", api},
		{"wrong secret", token, &API{Config: &config.Config{
			SessionSecret:  "another-secret",
			SessionExpires: "24h",
		}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.api.verifySessionToken(tc.token); err == nil {
				t.Error("verifySessionToken accepted an invalid token")
			}
		})
	}
}

func TestVerifySessionTokenExpired(t *testing.T) {
	api := testAPI()
	api.Config.SessionExpires = "-1h"

	token, _, err := api.createSessionToken(model.User{ID: util.GenerateUUID(), Username: "ola"})
	if err != nil {
		t.Fatalf("createSessionToken returned error %v", err)
	}

	if _, err := api.verifySessionToken(token); err == nil {
		t.Error("verifySessionToken accepted an expired token")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := hashPassword("korrekt hest batteri stift")
	if err != nil {
		t.Fatalf("hashPassword returned error %v", err)
	}
	if hash == "korrekt hest batteri stift" {
		t.Fatal("hashPassword returned the plaintext")
	}

	if err := verifyPassword(hash, "korrekt hest batteri stift"); err != nil {
		t.Errorf("verifyPassword rejected the correct password: %v", err)
	}
	if err := verifyPassword(hash, "feil passord"); err == nil {
		t.Error("verifyPassword accepted a wrong password")
	}
}
