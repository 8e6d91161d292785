package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/testnotes/testnotes-go/internal/crypto"
	"github.com/testnotes/testnotes-go/internal/model"
	"github.com/testnotes/testnotes-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUsernameRequired   = errors.New("username is required")
	ErrUsernameTooShort   = errors.New("username must be at least 3 characters")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
)

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthService handles account registration and credential verification.
// Session issuance happens at the HTTP layer, after these succeed.
type AuthService struct {
	users UserStore
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// Register creates a new user account. The email is normalized to lower case
// before storage so uniqueness is case-insensitive. Uniqueness itself is
// enforced by the store, not by a read-then-write check, so concurrent
// sign-ups for the same identity cannot both succeed.
func (s *AuthService) Register(ctx context.Context, req model.SignupRequest) (*model.User, error) {
	username := strings.TrimSpace(req.Username)
	email := normalizeEmail(req.Email)

	if username == "" {
		return nil, ErrUsernameRequired
	}
	if utf8.RuneCountInString(username) < 3 {
		return nil, ErrUsernameTooShort
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	if req.Password == "" {
		return nil, ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, ErrUsernameTaken
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// SignIn verifies credentials for an existing account. A missing account and
// a wrong password both return ErrInvalidCredentials so responses never
// reveal whether an email is registered.
func (s *AuthService) SignIn(ctx context.Context, req model.SigninRequest) (*model.User, error) {
	email := normalizeEmail(req.Email)

	if email == "" {
		return nil, ErrEmailRequired
	}
	if req.Password == "" {
		return nil, ErrPasswordRequired
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
