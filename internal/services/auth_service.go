package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"mskn-backend/internal/access"
	"mskn-backend/internal/apperr"
	"mskn-backend/internal/auth"
	"mskn-backend/internal/logger"
	"mskn-backend/internal/metrics"
	"mskn-backend/internal/models"
	"mskn-backend/internal/repositories"
	"mskn-backend/internal/timeutil"
	"mskn-backend/internal/validation"
)

// Revoker remembers logged-out tokens. *cache.Denylist implements it.
type Revoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) bool
}

type AuthService struct {
	Users   UserStore
	Tokens  *auth.JWTManager
	Revoked Revoker
	now     func() time.Time
}

func NewAuthService(users UserStore, tokens *auth.JWTManager, revoked Revoker) *AuthService {
	return &AuthService{Users: users, Tokens: tokens, Revoked: revoked, now: timeutil.Now}
}

// Login checks credentials. An unknown email and a wrong password fail the
// same way.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.Users.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			metrics.LoginAttempts.WithLabelValues("invalid").Inc()
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, apperr.Internal(err)
	}
	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		metrics.LoginAttempts.WithLabelValues("invalid").Inc()
		return nil, apperr.ErrInvalidCredentials
	}

	token, err := s.Tokens.GenerateToken(user)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	metrics.LoginAttempts.WithLabelValues("success").Inc()
	logger.For("AuthService").WithField("user_id", user.ID).Info("User logged in")
	return &models.AuthResponse{User: user, Token: token}, nil
}

// Register creates an account and signs the new user in.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	email := strings.TrimSpace(req.Email)

	_, err := s.Users.GetByEmail(ctx, email)
	if err == nil {
		return nil, apperr.ErrUserAlreadyExists
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.Internal(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	now := s.now()
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         req.Role,
		Phone:        req.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		// A concurrent registration can win between the lookup and the insert.
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperr.ErrUserAlreadyExists
		}
		return nil, apperr.Internal(err)
	}

	token, err := s.Tokens.GenerateToken(user)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	logger.For("AuthService").WithField("user_id", user.ID).WithField("role", user.Role).Info("User registered")
	return &models.AuthResponse{User: user, Token: token}, nil
}

// Authenticate resolves a bearer token to the current user. The role comes
// from the stored user, not from the token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.Tokens.ValidateToken(token)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}
	if s.Revoked != nil && s.Revoked.IsRevoked(ctx, claims.ID) {
		return nil, apperr.Unauthorized("Token has been revoked")
	}

	user, err := s.Users.Get(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperr.Unauthorized("User not found")
		}
		return nil, apperr.Internal(err)
	}
	return user, nil
}

// Logout revokes the token until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.Tokens.ValidateToken(token)
	if err != nil {
		return apperr.Unauthorized("Invalid or expired token")
	}
	if s.Revoked == nil || claims.ExpiresAt == nil {
		return nil
	}
	if err := s.Revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// Identity reduces a user to what the access layer needs.
func Identity(u *models.User) access.Identity {
	return access.Identity{UserID: u.ID, Role: u.Role}
}
