package repository

import (
	"context"

	"microboard/internal/domain/entity"
)

type ArticleRepository interface {
	// Create persists a new article and fills in the generated ID and timestamps.
	Create(ctx context.Context, article *entity.Article) error
	// Get returns (nil, nil) when the article does not exist.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	Update(ctx context.Context, article *entity.Article) error
	// Delete removes the article and its comments in a single transaction.
	Delete(ctx context.Context, id int64) error
}
