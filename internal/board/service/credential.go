package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/quietroom/quietroom/internal/board/domain"
	"github.com/quietroom/quietroom/internal/board/store"
	"github.com/quietroom/quietroom/pkg/cryptox"
	"github.com/quietroom/quietroom/pkg/idx"
)

var (
	// ErrUnknownUser means no account exists for the submitted username.
	ErrUnknownUser = errors.New("service: unknown user")
	// ErrBadPassword means the account exists but the password hash did not match.
	ErrBadPassword = errors.New("service: bad password")
)

// CredentialService owns account creation and password authentication.
type CredentialService struct {
	Store store.Store
}

// Register hashes the password and persists a new user with both membership
// flags false. The hash completes before the insert starts, and the caller
// must not respond before Register returns. Returns store.ErrAlreadyExists
// when the username is taken.
func (s *CredentialService) Register(ctx context.Context, firstName, lastName, username, password string) (domain.User, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hash,
		IsMember:     false,
		IsAdmin:      false,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// Authenticate looks up the user and verifies the password against the
// stored hash. It fails with ErrUnknownUser or ErrBadPassword; callers
// surface neither distinction to the client.
func (s *CredentialService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUnknownUser
	}
	if err != nil {
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		return domain.User{}, ErrBadPassword
	}
	return u, nil
}

// CurrentUser resolves a session username back to a fresh user record, so
// flag changes are visible on the next request. An unknown username (user
// deleted since login) resolves to no user rather than an error.
func (s *CredentialService) CurrentUser(ctx context.Context, username string) (*domain.User, error) {
	if username == "" {
		return nil, nil
	}
	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
