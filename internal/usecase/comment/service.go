// Package comment provides use cases for managing comments attached to
// articles.
package comment

import (
	"context"
	"fmt"
	"time"

	"microboard/internal/domain/entity"
	"microboard/internal/repository"
)

// CreateInput represents the input parameters for creating a new comment.
type CreateInput struct {
	ArticleID int64
	Content   string
}

// UpdateInput represents the input parameters for updating an existing comment.
type UpdateInput struct {
	ID      int64
	Content string
}

// Service provides comment management use cases.
type Service struct {
	Comments repository.CommentRepository
	Articles repository.ArticleRepository
}

// Create attaches a new comment to an existing article. The parent article
// must exist at creation time; returns entity.ErrArticleNotFound otherwise,
// and entity.ErrInvalidContent on blank content.
func (s *Service) Create(ctx context.Context, in CreateInput, caller *entity.User) (*entity.Comment, error) {
	art, err := s.Articles.Get(ctx, in.ArticleID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, entity.ErrArticleNotFound
	}
	if entity.IsBlank(in.Content) {
		return nil, entity.ErrInvalidContent
	}

	now := time.Now()
	cm := &entity.Comment{
		ArticleID: in.ArticleID,
		AuthorID:  caller.ID,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Comments.Create(ctx, cm); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return cm, nil
}

// Update mutates an existing comment in place. Returns
// entity.ErrCommentNotFound if the id is absent and
// entity.ErrForbiddenCommentEdit if the caller is not the owner.
func (s *Service) Update(ctx context.Context, in UpdateInput, caller *entity.User) (*entity.Comment, error) {
	cm, err := s.Comments.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if cm == nil {
		return nil, entity.ErrCommentNotFound
	}
	if err := entity.CheckOwnership(caller.ID, cm.AuthorID, entity.ErrForbiddenCommentEdit); err != nil {
		return nil, err
	}
	if entity.IsBlank(in.Content) {
		return nil, entity.ErrInvalidContent
	}

	cm.Content = in.Content
	cm.UpdatedAt = time.Now()
	if err := s.Comments.Update(ctx, cm); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return cm, nil
}

// Delete removes a comment. Same not-found and ownership semantics as Update.
func (s *Service) Delete(ctx context.Context, id int64, caller *entity.User) error {
	cm, err := s.Comments.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get comment: %w", err)
	}
	if cm == nil {
		return entity.ErrCommentNotFound
	}
	if err := entity.CheckOwnership(caller.ID, cm.AuthorID, entity.ErrForbiddenCommentEdit); err != nil {
		return err
	}
	if err := s.Comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
