// Package auth implements credential verification and bearer-token issuance.
// It is framework-agnostic: HTTP concerns live in internal/handler/http/auth.
package auth

import (
	"context"
	"fmt"
	"time"

	"microboard/internal/domain/entity"
	"microboard/internal/repository"
)

// Service verifies email/password credentials against the user store and
// issues token pairs on success.
type Service struct {
	Users repository.UserRepository
	Codec *Codec
}

// SignIn verifies the credentials and returns an access/refresh token pair.
// The access token carries the username and an empty authority string; the
// system has no role hierarchy beyond "authenticated".
func (s *Service) SignIn(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.VerifyCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	access, err := s.Codec.Issue(user.Username, "", now)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.Codec.IssueRefresh(now)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyCredentials looks up the account by email and compares the password
// against the stored hash. It is shared by sign-in and withdrawal: the bearer
// token proves "is signed in", this check proves "still knows the password".
// Returns entity.ErrUserNotFound or entity.ErrPasswordMismatch.
func (s *Service) VerifyCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if user == nil {
		return nil, entity.ErrUserNotFound
	}
	if !ComparePassword(user.PasswordHash, password) {
		return nil, entity.ErrPasswordMismatch
	}
	return user, nil
}
