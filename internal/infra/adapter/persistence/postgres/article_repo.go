package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"microboard/internal/domain/entity"
	"microboard/internal/repository"
)

type ArticleRepo struct {
	db *sql.DB
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles (author_id, title, content, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		article.AuthorID, article.Title, article.Content,
		article.CreatedAt, article.UpdatedAt,
	).Scan(&article.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT id, author_id, title, content, created_at, updated_at
FROM articles
WHERE id = $1
LIMIT 1`
	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&article.ID, &article.AuthorID, &article.Title,
			&article.Content, &article.CreatedAt, &article.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &article, nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles SET
       title      = $1,
       content    = $2,
       updated_at = $3
WHERE id = $4`
	res, err := repo.db.ExecContext(ctx, query,
		article.Title, article.Content, article.UpdatedAt, article.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}
	return nil
}

// Delete removes the article and its comments atomically.
func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Delete: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const deleteComments = `DELETE FROM comments WHERE article_id = $1`
	if _, err := tx.ExecContext(ctx, deleteComments, id); err != nil {
		return fmt.Errorf("Delete: comments: %w", err)
	}

	const deleteArticle = `DELETE FROM articles WHERE id = $1`
	res, err := tx.ExecContext(ctx, deleteArticle, id)
	if err != nil {
		return fmt.Errorf("Delete: article: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Delete: commit: %w", err)
	}
	return nil
}
