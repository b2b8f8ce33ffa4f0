package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stitchline/storefront/internal/common"
	"github.com/stitchline/storefront/internal/server/auth"
	"github.com/stitchline/storefront/internal/server/config"
)

// Service implements the signup and login flows. Both return a signed
// session token on success; no server-side session state exists.
type Service struct {
	repo          Repository
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

func (s *Service) issueToken(user *User) (string, error) {
	return auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
}

// Signup creates a new account with a pre-populated cart and returns a
// session token for it. A duplicate email yields common.ErrorAlreadyExists,
// whether detected by the lookup here or by the store's uniqueness
// constraint when two signups race.
func (s *Service) Signup(ctx context.Context, name, email, password string) (string, error) {

	if name == "" || email == "" || password == "" {
		return "", common.ErrorValidation
	}

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return "", common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return "", fmt.Errorf("error checking existing user: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Cart:         NewDefaultCart(),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", common.ErrorAlreadyExists
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return s.issueToken(user)
}

// Login verifies the credentials and returns a session token. An unknown
// email yields common.ErrorNotFound, a bad password common.ErrorWrongPassword.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {

	if email == "" || password == "" {
		return "", common.ErrorValidation
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("error loading user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrorWrongPassword
	}

	return s.issueToken(user)
}
