// Package repository defines the persistence interfaces the use cases depend
// on. Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"microboard/internal/domain/entity"
)

type UserRepository interface {
	// Create persists a new user and fills in the generated ID.
	// Unique-constraint violations are mapped to entity.ErrDuplicateEmail or
	// entity.ErrDuplicateUsername so concurrent sign-ups stay well-typed.
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail returns (nil, nil) when no user has the given email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindByUsername returns (nil, nil) when no user has the given username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// Delete removes the user together with their articles, their comments,
	// and the comments left on their articles, in a single transaction.
	Delete(ctx context.Context, id int64) error
}
