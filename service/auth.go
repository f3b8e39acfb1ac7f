// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xiaoe7442-ops/todo/auth"
	"github.com/xiaoe7442-ops/todo/store"
)

type AuthService struct {
	store *store.Store
}

func NewAuthService(s *store.Store) *AuthService {
	return &AuthService{store: s}
}

// Register creates an account. The caller must log in separately.
func (a *AuthService) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return newError(ErrValidation, "username and password are required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	err = a.store.CreateUser(ctx, username, hash)
	if errors.Is(err, store.ErrDuplicate) {
		return newError(ErrConflict, "username already exists")
	}
	if err != nil {
		return fmt.Errorf("register %q: %w", username, err)
	}
	return nil
}

// Login checks the credentials verbatim and returns the session to issue.
// Unknown users and wrong passwords fail identically.
func (a *AuthService) Login(ctx context.Context, username, password string) (auth.Session, error) {
	invalid := newError(ErrAuth, "invalid username or password")

	user, err := a.store.GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return auth.Session{}, invalid
	}
	if err != nil {
		return auth.Session{}, fmt.Errorf("login %q: %w", username, err)
	}

	err = auth.CheckPassword(user.PasswordHash, password)
	if errors.Is(err, auth.ErrInvalidPassword) {
		return auth.Session{}, invalid
	}
	if err != nil {
		return auth.Session{}, fmt.Errorf("login %q: %w", username, err)
	}

	return auth.Session{UserID: user.ID, Username: user.Username}, nil
}
