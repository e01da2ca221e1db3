package model

import "github.com/google/uuid"

type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=2,max=50"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Redirect string `json:"redirect,omitempty"`
}

type LoginResponse struct {
	User     *LoginUserResponse `json:"user"`
	Redirect string             `json:"redirect,omitempty"`
}

type LoginUserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}
