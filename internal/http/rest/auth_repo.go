package rest

import (
	"context"
	"log"

	"github.com/mvbakke/wcag-reviews/internal/model"
)

func (api *API) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	stmt := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`

	err := api.DB.QueryRow(ctx, stmt, username).Scan(&exists)
	if err != nil {
		log.Println("error checking username", err)
		return false, err
	}
	return exists, nil
}

func (api *API) CreateNewUserRepo(ctx context.Context, user model.User) error {
	stmt := `
        INSERT INTO users (
            id,
            username,
            email,
            password_hash,
            role,
            auth_provider
        ) VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := api.DB.Exec(ctx, stmt, user.ID, user.Username, user.Email, user.PasswordHash, user.Role, user.AuthProvider)
	if err != nil {
		log.Println("error creating new user", err)
		return err
	}
	return nil
}

func (api *API) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	var user model.User
	stmt := `SELECT id, username, email, password_hash, role, auth_provider, created_at FROM users WHERE username = $1`

	err := api.DB.QueryRow(ctx, stmt, username).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.AuthProvider,
		&user.CreatedAt,
	)
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (api *API) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	stmt := `SELECT id, username, email, password_hash, role, auth_provider, created_at FROM users WHERE email = $1`

	err := api.DB.QueryRow(ctx, stmt, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.AuthProvider,
		&user.CreatedAt,
	)
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (api *API) GetUserByID(ctx context.Context, userID string) (model.User, error) {
	var user model.User
	stmt := `SELECT id, username, email, role, auth_provider, created_at FROM users WHERE id = $1`

	err := api.DB.QueryRow(ctx, stmt, userID).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Role,
		&user.AuthProvider,
		&user.CreatedAt,
	)
	if err != nil {
		log.Println("error getting user by ID", err)
		return model.User{}, err
	}
	return user, nil
}
