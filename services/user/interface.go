package user

import (
	"context"

	"tourbase/models"

	userRepo "tourbase/database/repository/user"
)

// AuthResponse is returned on successful signup or signin.
type AuthResponse struct {
	User  models.PublicUser `json:"user"`
	Token string            `json:"token"`
}

// UserService defines account management operations.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	RevokeToken(ctx context.Context, token string) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	RegisterFCMToken(ctx context.Context, userID, token string) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
