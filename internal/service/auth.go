package service

import (
	"context"
	"errors"
	"time"

	"github.com/bookrack/bookrack-go/internal/crypto"
	"github.com/bookrack/bookrack-go/internal/model"
	"github.com/bookrack/bookrack-go/internal/repository"
	"github.com/bookrack/bookrack-go/internal/validation"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles signup and login business logic.
type AuthService struct {
	repo      *repository.UserRepository
	validator *validation.Validator
	secret    string
	ttl       time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		validator: validation.New(),
		secret:    secret,
		ttl:       ttl,
	}
}

// Signup validates the form and creates the account. Validation failures and
// a taken username come back as messages for inline rendering rather than as
// an error; the password is hashed before it reaches the store.
func (s *AuthService) Signup(ctx context.Context, form model.SignupForm) ([]string, error) {
	if msgs := s.validator.Messages(form); len(msgs) > 0 {
		return msgs, nil
	}

	hash, err := crypto.HashPassword(form.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     form.Username,
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return []string{"User already exists"}, nil
		}
		return nil, err
	}

	return nil, nil
}

// Login verifies credentials and issues a session token. An unknown username
// and a wrong password both yield ErrInvalidCredentials so the caller cannot
// tell which check failed.
func (s *AuthService) Login(ctx context.Context, form model.LoginForm) (string, error) {
	user, err := s.repo.GetByUsername(ctx, form.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !crypto.VerifyPassword(form.Password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return crypto.NewSessionToken(user.ID, s.secret, s.ttl)
}
