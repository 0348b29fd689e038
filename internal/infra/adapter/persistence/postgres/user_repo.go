// Package postgres implements the repository interfaces over PostgreSQL using
// database/sql with the pgx stdlib driver. Cascading deletes are explicit
// multi-statement transactions, never FK-level ON DELETE CASCADE.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"microboard/internal/domain/entity"
	"microboard/internal/repository"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	const query = `
INSERT INTO users (email, username, password_hash, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		user.Email, user.Username, user.PasswordHash, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		// The use case checks uniqueness first; this catches the race between
		// that check and the insert.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == "users_username_key" {
				return entity.ErrDuplicateUsername
			}
			return entity.ErrDuplicateEmail
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	const query = `
SELECT id, email, username, password_hash, created_at
FROM users
WHERE email = $1
LIMIT 1`
	return repo.findOne(ctx, query, email)
}

func (repo *UserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	const query = `
SELECT id, email, username, password_hash, created_at
FROM users
WHERE username = $1
LIMIT 1`
	return repo.findOne(ctx, query, username)
}

func (repo *UserRepo) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var user entity.User
	err := repo.db.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Email, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("findOne: %w", err)
	}
	return &user, nil
}

func (repo *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
	var existsFlag bool
	if err := repo.db.QueryRowContext(ctx, query, email).Scan(&existsFlag); err != nil {
		return false, fmt.Errorf("ExistsByEmail: %w", err)
	}
	return existsFlag, nil
}

func (repo *UserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`
	var existsFlag bool
	if err := repo.db.QueryRowContext(ctx, query, username).Scan(&existsFlag); err != nil {
		return false, fmt.Errorf("ExistsByUsername: %w", err)
	}
	return existsFlag, nil
}

// Delete removes the user, their articles, their comments, and the comments
// other users left on their articles, atomically.
func (repo *UserRepo) Delete(ctx context.Context, id int64) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Delete: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const deleteComments = `
DELETE FROM comments
WHERE author_id = $1
   OR article_id IN (SELECT id FROM articles WHERE author_id = $1)`
	if _, err := tx.ExecContext(ctx, deleteComments, id); err != nil {
		return fmt.Errorf("Delete: comments: %w", err)
	}

	const deleteArticles = `DELETE FROM articles WHERE author_id = $1`
	if _, err := tx.ExecContext(ctx, deleteArticles, id); err != nil {
		return fmt.Errorf("Delete: articles: %w", err)
	}

	const deleteUser = `DELETE FROM users WHERE id = $1`
	res, err := tx.ExecContext(ctx, deleteUser, id)
	if err != nil {
		return fmt.Errorf("Delete: user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Delete: commit: %w", err)
	}
	return nil
}
