package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microboard/internal/domain/entity"
)

func TestArticleRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO articles").
		WithArgs(int64(1), "title", "content", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	repo := NewArticleRepo(db)
	now := time.Now()
	art := &entity.Article{AuthorID: 1, Title: "title", Content: "content", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(context.Background(), art))
	assert.Equal(t, int64(5), art.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepoGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "author_id", "title", "content", "created_at", "updated_at"}).
		AddRow(int64(5), int64(1), "title", "content", now, now)
	mock.ExpectQuery("SELECT id, author_id, title, content, created_at, updated_at").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	repo := NewArticleRepo(db)
	art, err := repo.Get(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, art)
	assert.Equal(t, "title", art.Title)
	assert.Equal(t, int64(1), art.AuthorID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepoGetAbsent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, author_id, title, content, created_at, updated_at").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "author_id", "title", "content", "created_at", "updated_at"}))

	repo := NewArticleRepo(db)
	art, err := repo.Get(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, art)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepoUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE articles SET").
		WithArgs("new title", "new content", sqlmock.AnyArg(), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewArticleRepo(db)
	art := &entity.Article{ID: 5, Title: "new title", Content: "new content", UpdatedAt: time.Now()}
	require.NoError(t, repo.Update(context.Background(), art))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepoUpdateAbsent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE articles SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewArticleRepo(db)
	err = repo.Update(context.Background(), &entity.Article{ID: 404})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepoDeleteCascades(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM comments WHERE article_id = $1`)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM articles WHERE id = $1`)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewArticleRepo(db)
	require.NoError(t, repo.Delete(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepoDeleteAbsentRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM comments WHERE article_id = $1`)).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM articles WHERE id = $1`)).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	repo := NewArticleRepo(db)
	assert.Error(t, repo.Delete(context.Background(), 404))
	assert.NoError(t, mock.ExpectationsWereMet())
}
