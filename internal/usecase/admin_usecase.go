package usecase

import (
	"context"

	"activator/internal/domain/entity"
)

// RegisterAdminInput defines the data required to create an admin account.
type RegisterAdminInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for an admin to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Admin        *entity.Admin
}

// RefreshTokenOutput returns a new token pair.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// AdminUsecase defines the admin account operations.
type AdminUsecase interface {
	Register(ctx context.Context, input *RegisterAdminInput) (*entity.Admin, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, refreshToken string) (*RefreshTokenOutput, error)
}
