package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"tripplanner/internal/auth"
	"tripplanner/internal/models"
	"tripplanner/internal/storage"
)

// AuthService implements registration, login and session resolution.
type AuthService struct {
	store    storage.Store
	sessions *auth.SessionManager
}

// NewAuthService creates a new AuthService with the given storage backend and
// session manager.
func NewAuthService(store storage.Store, sessions *auth.SessionManager) *AuthService {
	return &AuthService{store: store, sessions: sessions}
}

// Register creates a new user account with a hashed password.
// Fails with ErrDuplicateIdentity if the email or nickname is taken.
func (s *AuthService) Register(ctx context.Context, email, nickname, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	nickname = strings.TrimSpace(nickname)

	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrValidation)
	}
	if nickname == "" {
		return nil, fmt.Errorf("%w: nickname is required", ErrValidation)
	}
	if err := auth.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	// Pre-check both unique keys for a precise error. The store's UNIQUE
	// constraints backstop this under concurrent registration.
	if existing, err := s.store.GetUserByEmail(ctx, email); err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	} else if existing != nil {
		return nil, fmt.Errorf("register %q: %w", email, ErrDuplicateIdentity)
	}
	if existing, err := s.store.GetUserByNickname(ctx, nickname); err != nil {
		return nil, fmt.Errorf("check nickname: %w", err)
	} else if existing != nil {
		return nil, fmt.Errorf("register %q: %w", nickname, ErrDuplicateIdentity)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Nickname:     nickname,
		PasswordHash: hash,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			// Lost the race against a concurrent registration.
			return nil, fmt.Errorf("register %q: %w", email, ErrDuplicateIdentity)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	slog.Info("User registered", "user_id", user.ID, "nickname", user.Nickname)
	return user, nil
}

// Authenticate verifies the credentials and issues a session token.
// Fails with ErrInvalidCredentials for unknown email and wrong password alike.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}
	if user == nil || !auth.CheckPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.CreateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("create session token: %w", err)
	}

	slog.Info("User authenticated", "user_id", user.ID)
	return user, token, nil
}

// UserFromToken resolves a session token to the current user.
// Fails with ErrNotAuthenticated if the token is invalid or expired, or if
// the user it references no longer exists.
func (s *AuthService) UserFromToken(ctx context.Context, token string) (*models.User, error) {
	userID, ok := s.sessions.Verify(token)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	return user, nil
}
