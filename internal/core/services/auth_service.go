package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cemas-app/cemas_backend/internal/apperrors"
	"github.com/cemas-app/cemas_backend/internal/core/domain"
	portsrepo "github.com/cemas-app/cemas_backend/internal/core/ports/repositories"
	portssvc "github.com/cemas-app/cemas_backend/internal/core/ports/services"
	"github.com/cemas-app/cemas_backend/internal/dto"
	"github.com/cemas-app/cemas_backend/internal/middleware"
	"github.com/cemas-app/cemas_backend/internal/utils"
)

// sessionTokenBytes is the raw entropy of an issued token; hex encoding
// doubles it on the wire.
const sessionTokenBytes = 32

// authService implements registration, login, logout and token resolution
// on top of the user and session repositories.
type authService struct {
	userRepo        portsrepo.UserRepository
	sessionRepo     portsrepo.SessionRepository
	sessionDuration time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo portsrepo.UserRepository, sessionRepo portsrepo.SessionRepository, sessionDuration time.Duration) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:        userRepo,
		sessionRepo:     sessionRepo,
		sessionDuration: sessionDuration,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register creates a user with a hashed password and issues a session token.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Password != req.PasswordConfirm {
		return nil, fmt.Errorf("%w: passwords do not match", apperrors.ErrValidation)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		// ErrDuplicate propagates as-is for the handler to map.
		return nil, err
	}

	token, err := s.issueSession(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	return &dto.AuthResponse{Token: token, UserID: user.UserID, Username: user.Username}, nil
}

// Login validates credentials and issues a session token. An unknown user and
// a wrong password are deliberately indistinguishable.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	token, err := s.issueSession(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, UserID: user.UserID, Username: user.Username}, nil
}

// Logout revokes the presented token by deleting its session row.
func (s *authService) Logout(ctx context.Context, token string) error {
	err := s.sessionRepo.DeleteSession(ctx, utils.HashToken(token))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: unknown token", apperrors.ErrUnauthorized)
		}
		return err
	}
	return nil
}

// ResolveToken maps a bearer token to its user, rejecting unknown, revoked
// and expired tokens.
func (s *authService) ResolveToken(ctx context.Context, token string) (string, error) {
	session, err := s.sessionRepo.FindSessionByTokenHash(ctx, utils.HashToken(token))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: unknown token", apperrors.ErrUnauthorized)
		}
		return "", err
	}
	if session.Expired(time.Now().UTC()) {
		return "", fmt.Errorf("%w: token expired", apperrors.ErrUnauthorized)
	}
	return session.UserID, nil
}

// issueSession creates a fresh token, stores only its digest, and returns the
// plaintext token. Each call issues a distinct session: concurrent logins do
// not revoke each other.
func (s *authService) issueSession(ctx context.Context, userID string) (string, error) {
	token, err := utils.GenerateSecureRandomString(sessionTokenBytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	now := time.Now().UTC()
	session := domain.Session{
		TokenHash: utils.HashToken(token),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}
	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		return "", err
	}
	return token, nil
}
