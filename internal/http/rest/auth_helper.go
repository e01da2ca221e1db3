package rest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/mvbakke/wcag-reviews/internal/model"
	"github.com/mvbakke/wcag-reviews/util"
	"github.com/mvbakke/wcag-reviews/util/values"
	"golang.org/x/crypto/bcrypt"
)

// createSessionToken signs the session claims that back the cookie:
// user id, username and role, expiring per SESSION_EXPIRES (24h).
func (api *API) createSessionToken(user model.User) (string, time.Time, error) {
	expTime, err := time.ParseDuration(api.Config.SessionExpires)
	if err != nil {
		return "", time.Time{}, err
	}
	expiresAt := time.Now().Add(expTime)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      user.ID.String(),
		"username": user.Username,
		"role":     user.Role,
		"exp":      expiresAt.Unix(),
		"iat":      time.Now().Unix(),
		"typ":      "session",
	})

	tokenString, err := token.SignedString([]byte(api.Config.SessionSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

func (api *API) verifySessionToken(tokenString string) (*model.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(api.Config.SessionSecret), nil
	})

	if ve, ok := err.(*jwt.ValidationError); ok {
		if ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, fmt.Errorf("token expired")
		}
	}

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims")
	}

	if typ, _ := claims["typ"].(string); typ != "session" {
		return nil, fmt.Errorf("invalid token type")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid user id")
	}
	userID, err := util.StringToUUID(sub)
	if err != nil {
		return nil, fmt.Errorf("invalid user id")
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	return &model.Session{
		UserID:   userID,
		Username: username,
		Role:     role,
	}, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func verifyPassword(hashedPwd, plainPwd string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPwd), []byte(plainPwd))
}

func (api *API) CreateNewUser(ctx context.Context, req model.RegisterRequest) (model.User, string, string, error) {
	req.Username = strings.TrimSpace(req.Username)

	if len(req.Username) < 2 {
		return model.User{}, values.Unprocessable, "Brukernavn må være minst 2 tegn", fmt.Errorf("username too short")
	}
	if len(req.Password) < 8 {
		return model.User{}, values.Unprocessable, "Passordet må være minst 8 tegn", fmt.Errorf("password too short")
	}
	if req.Password != req.ConfirmPassword {
		return model.User{}, values.Unprocessable, "Passordene er ikke like", fmt.Errorf("password mismatch")
	}

	exists, err := api.UsernameExists(ctx, req.Username)
	if err != nil {
		return model.User{}, values.Error, "Feil ved registrering", err
	}
	if exists {
		return model.User{}, values.Conflict, "Brukernavn er allerede tatt", fmt.Errorf("username taken")
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return model.User{}, values.Error, "Feil ved registrering", err
	}

	user := model.User{
		ID:           util.GenerateUUID(),
		Username:     req.Username,
		PasswordHash: &hash,
		Role:         values.RoleUser,
		AuthProvider: "local",
	}

	if err := api.CreateNewUserRepo(ctx, user); err != nil {
		return model.User{}, values.Error, "Feil ved registrering", err
	}

	return user, values.Created, "Bruker opprettet", nil
}

func (api *API) LoginUser(ctx context.Context, req model.LoginRequest) (model.User, string, string, error) {
	req.Username = strings.TrimSpace(req.Username)

	user, err := api.GetUserByUsername(ctx, req.Username)
	if err != nil {
		// same message for unknown user and wrong password
		return model.User{}, values.NotAuthorised, "Feil brukernavn eller passord", err
	}

	if user.PasswordHash == nil {
		return model.User{}, values.NotAuthorised, "Feil brukernavn eller passord", fmt.Errorf("user has no local credential")
	}

	if err := verifyPassword(*user.PasswordHash, req.Password); err != nil {
		return model.User{}, values.NotAuthorised, "Feil brukernavn eller passord", err
	}

	return user, values.Success, "Innlogging vellykket", nil
}
