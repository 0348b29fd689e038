package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"microboard/internal/domain/entity"
	"microboard/internal/repository"
)

type CommentRepo struct {
	db *sql.DB
}

func NewCommentRepo(db *sql.DB) repository.CommentRepository {
	return &CommentRepo{db: db}
}

func (repo *CommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	const query = `
INSERT INTO comments (article_id, author_id, content, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		comment.ArticleID, comment.AuthorID, comment.Content,
		comment.CreatedAt, comment.UpdatedAt,
	).Scan(&comment.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *CommentRepo) Get(ctx context.Context, id int64) (*entity.Comment, error) {
	const query = `
SELECT id, article_id, author_id, content, created_at, updated_at
FROM comments
WHERE id = $1
LIMIT 1`
	var comment entity.Comment
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&comment.ID, &comment.ArticleID, &comment.AuthorID,
			&comment.Content, &comment.CreatedAt, &comment.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &comment, nil
}

func (repo *CommentRepo) Update(ctx context.Context, comment *entity.Comment) error {
	const query = `
UPDATE comments SET
       content    = $1,
       updated_at = $2
WHERE id = $3`
	res, err := repo.db.ExecContext(ctx, query,
		comment.Content, comment.UpdatedAt, comment.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}
	return nil
}

func (repo *CommentRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM comments WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}
