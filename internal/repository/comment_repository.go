package repository

import (
	"context"

	"microboard/internal/domain/entity"
)

type CommentRepository interface {
	// Create persists a new comment and fills in the generated ID and timestamps.
	Create(ctx context.Context, comment *entity.Comment) error
	// Get returns (nil, nil) when the comment does not exist.
	Get(ctx context.Context, id int64) (*entity.Comment, error)
	Update(ctx context.Context, comment *entity.Comment) error
	Delete(ctx context.Context, id int64) error
}
