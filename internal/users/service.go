// Package users implements registration and credential verification on top
// of a storage.UserStore.
package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hongminglow/blog-be/internal/auth"
	"github.com/hongminglow/blog-be/internal/common"
	"github.com/hongminglow/blog-be/internal/models"
	"github.com/hongminglow/blog-be/internal/storage"
)

// ErrPasswordTooLong rejects passwords bcrypt cannot hash.
var ErrPasswordTooLong = fmt.Errorf("%w: password must be at most %d bytes", common.ErrInvalidInput, auth.MaxPasswordBytes)

// Service registers users and verifies their credentials.
type Service struct {
	store  storage.UserStore
	logger *slog.Logger
}

// NewService creates a users service backed by store.
func NewService(store storage.UserStore, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Register hashes the password and persists a new user, returning its id.
func (s *Service) Register(ctx context.Context, username, email, password string) (int64, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return 0, fmt.Errorf("%w: username, email and password are required", common.ErrInvalidInput)
	}
	if len(password) > auth.MaxPasswordBytes {
		return 0, ErrPasswordTooLong
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return 0, err
	}

	created, err := s.store.CreateUser(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return 0, common.ErrDuplicateIdentity
		}
		return 0, fmt.Errorf("create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", created.ID, "username", created.Username)
	return created.ID, nil
}

// VerifyCredentials returns the user whose username and password match.
func (s *Service) VerifyCredentials(ctx context.Context, username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: username and password are required", common.ErrInvalidInput)
	}

	user, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.User{}, common.ErrNotFound
		}
		return models.User{}, fmt.Errorf("find user: %w", err)
	}

	ok, err := auth.ComparePassword(user.PasswordHash, password)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, common.ErrInvalidCredentials
	}
	return user, nil
}
