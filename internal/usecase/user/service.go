// Package user provides the account lifecycle use cases: sign-up and
// withdrawal. Sign-in lives in internal/service/auth since it issues tokens
// rather than mutating the store.
package user

import (
	"context"
	"fmt"
	"time"

	"microboard/internal/domain/entity"
	"microboard/internal/repository"
	authsvc "microboard/internal/service/auth"
)

// Service provides user management use cases.
type Service struct {
	Users      repository.UserRepository
	Auth       *authsvc.Service
	BcryptCost int
}

// SignUpInput represents the input parameters for creating a new account.
type SignUpInput struct {
	Email    string
	Username string
	Password string
}

// SignUp validates the email format, checks email and username uniqueness,
// hashes the password, and persists the new user. The format check always runs
// before the uniqueness checks.
func (s *Service) SignUp(ctx context.Context, in SignUpInput) (*entity.User, error) {
	if err := entity.ValidateEmail(in.Email); err != nil {
		return nil, err
	}

	emailTaken, err := s.Users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check email uniqueness: %w", err)
	}
	if emailTaken {
		return nil, entity.ErrDuplicateEmail
	}

	usernameTaken, err := s.Users.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("check username uniqueness: %w", err)
	}
	if usernameTaken {
		return nil, entity.ErrDuplicateUsername
	}

	hash, err := authsvc.HashPassword(in.Password, s.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Withdrawal deletes an account. The caller must re-verify the account's
// email and password, and the re-verified account must be the caller's own:
// withdrawal can never target another account. Deleting the user cascades to
// their articles and comments.
func (s *Service) Withdrawal(ctx context.Context, email, password string, caller *entity.User) error {
	user, err := s.Auth.VerifyCredentials(ctx, email, password)
	if err != nil {
		return err
	}
	if err := entity.CheckOwnership(caller.ID, user.ID, entity.ErrForbiddenWithdrawal); err != nil {
		return err
	}
	if err := s.Users.Delete(ctx, user.ID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
