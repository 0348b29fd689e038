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

func TestCommentRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO comments").
		WithArgs(int64(5), int64(1), "nice read", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))

	repo := NewCommentRepo(db)
	now := time.Now()
	cm := &entity.Comment{ArticleID: 5, AuthorID: 1, Content: "nice read", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(context.Background(), cm))
	assert.Equal(t, int64(9), cm.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepoGetAbsent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, article_id, author_id, content, created_at, updated_at").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "article_id", "author_id", "content", "created_at", "updated_at"}))

	repo := NewCommentRepo(db)
	cm, err := repo.Get(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, cm)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepoUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE comments SET").
		WithArgs("edited", sqlmock.AnyArg(), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewCommentRepo(db)
	cm := &entity.Comment{ID: 9, Content: "edited", UpdatedAt: time.Now()}
	require.NoError(t, repo.Update(context.Background(), cm))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepoDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM comments WHERE id = $1`)).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewCommentRepo(db)
	require.NoError(t, repo.Delete(context.Background(), 9))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepoDeleteAbsent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM comments WHERE id = $1`)).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewCommentRepo(db)
	assert.Error(t, repo.Delete(context.Background(), 404))
	assert.NoError(t, mock.ExpectationsWereMet())
}
