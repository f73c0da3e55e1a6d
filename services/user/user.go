package user

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"tourbase/models"
	"tourbase/utils"
)

// Issued tokens are allowlisted in the auth cache (by hash) so sign-out can
// revoke them before expiry.
const (
	tokenTTL        = 72 * time.Hour
	authTokenPrefix = "authToken:"
)

func (s *DefaultUserService) Register(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	} else if err != nil && err != mongo.ErrNoDocuments {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(ctx, u)
}

func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("invalid email or password")
		}
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(ctx, u)
}

func (s *DefaultUserService) issueToken(ctx context.Context, u *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	key := authTokenPrefix + utils.HashToken(token)
	if err := utils.GetAuthCacheClient().Set(ctx, key, u.ID, tokenTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to register auth session: %w", err)
	}

	return &AuthResponse{User: u.Public(), Token: token}, nil
}

// RevokeToken removes a token from the allowlist, signing the session out.
func (s *DefaultUserService) RevokeToken(ctx context.Context, token string) error {
	key := authTokenPrefix + utils.HashToken(token)
	return utils.GetAuthCacheClient().Del(ctx, key).Err()
}

// IsTokenActive reports whether a token hash is still allowlisted.
func IsTokenActive(ctx context.Context, token string) bool {
	key := authTokenPrefix + utils.HashToken(token)
	_, err := utils.GetAuthCacheClient().Get(ctx, key).Result()
	return err == nil
}

func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	return u, nil
}

func (s *DefaultUserService) RegisterFCMToken(ctx context.Context, userID, token string) error {
	if token == "" {
		return fmt.Errorf("fcm token is required")
	}
	if err := s.Repo.SetFCMToken(ctx, userID, token); err != nil {
		return fmt.Errorf("failed to register fcm token: %w", err)
	}
	return nil
}
