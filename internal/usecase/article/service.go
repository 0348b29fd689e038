// Package article provides use cases for managing articles: creation,
// owner-guarded mutation, and owner-guarded deletion with comment cascade.
package article

import (
	"context"
	"fmt"
	"time"

	"microboard/internal/domain/entity"
	"microboard/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title   string
	Content string
}

// UpdateInput represents the input parameters for updating an existing article.
type UpdateInput struct {
	ID      int64
	Title   string
	Content string
}

// Service provides article management use cases. It handles validation and
// the ownership guard, and delegates persistence to the repository.
type Service struct {
	Articles repository.ArticleRepository
}

// Create validates the fields and persists a new article owned by the caller.
// Returns entity.ErrInvalidTitle or entity.ErrInvalidContent on blank fields.
func (s *Service) Create(ctx context.Context, in CreateInput, caller *entity.User) (*entity.Article, error) {
	if entity.IsBlank(in.Title) {
		return nil, entity.ErrInvalidTitle
	}
	if entity.IsBlank(in.Content) {
		return nil, entity.ErrInvalidContent
	}

	now := time.Now()
	art := &entity.Article{
		AuthorID:  caller.ID,
		Title:     in.Title,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Articles.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return art, nil
}

// Update mutates an existing article in place. Returns
// entity.ErrArticleNotFound if the id is absent and
// entity.ErrForbiddenArticleEdit if the caller is not the owner.
func (s *Service) Update(ctx context.Context, in UpdateInput, caller *entity.User) (*entity.Article, error) {
	art, err := s.Articles.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, entity.ErrArticleNotFound
	}
	if err := entity.CheckOwnership(caller.ID, art.AuthorID, entity.ErrForbiddenArticleEdit); err != nil {
		return nil, err
	}
	if entity.IsBlank(in.Title) {
		return nil, entity.ErrInvalidTitle
	}
	if entity.IsBlank(in.Content) {
		return nil, entity.ErrInvalidContent
	}

	art.Title = in.Title
	art.Content = in.Content
	art.UpdatedAt = time.Now()
	if err := s.Articles.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return art, nil
}

// Delete removes an article and its comments. Same not-found and ownership
// semantics as Update.
func (s *Service) Delete(ctx context.Context, id int64, caller *entity.User) error {
	art, err := s.Articles.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return entity.ErrArticleNotFound
	}
	if err := entity.CheckOwnership(caller.ID, art.AuthorID, entity.ErrForbiddenArticleEdit); err != nil {
		return err
	}
	if err := s.Articles.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
