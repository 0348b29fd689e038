package comment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microboard/internal/domain/entity"
)

type stubCommentRepo struct {
	comments map[int64]*entity.Comment
	nextID   int64
	deleted  []int64
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[int64]*entity.Comment), nextID: 1}
}

func (r *stubCommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	comment.ID = r.nextID
	r.nextID++
	copied := *comment
	r.comments[comment.ID] = &copied
	return nil
}

func (r *stubCommentRepo) Get(_ context.Context, id int64) (*entity.Comment, error) {
	cm, ok := r.comments[id]
	if !ok {
		return nil, nil
	}
	copied := *cm
	return &copied, nil
}

func (r *stubCommentRepo) Update(_ context.Context, comment *entity.Comment) error {
	copied := *comment
	r.comments[comment.ID] = &copied
	return nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id int64) error {
	delete(r.comments, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type stubArticleRepo struct {
	articles map[int64]*entity.Article
}

func (r *stubArticleRepo) Create(_ context.Context, article *entity.Article) error { return nil }

func (r *stubArticleRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	return r.articles[id], nil
}

func (r *stubArticleRepo) Update(_ context.Context, article *entity.Article) error { return nil }
func (r *stubArticleRepo) Delete(_ context.Context, id int64) error                { return nil }

var (
	author   = &entity.User{ID: 1, Email: "alice@example.com", Username: "alice"}
	stranger = &entity.User{ID: 2, Email: "bob@example.com", Username: "bob"}
)

func newTestService() (*Service, *stubCommentRepo) {
	comments := newStubCommentRepo()
	articles := &stubArticleRepo{articles: map[int64]*entity.Article{
		10: {ID: 10, AuthorID: 99, Title: "parent", Content: "body", CreatedAt: time.Now()},
	}}
	return &Service{Comments: comments, Articles: articles}, comments
}

func TestCreate(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), CreateInput{ArticleID: 10, Content: "nice"}, author)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, int64(10), created.ArticleID)
	assert.Equal(t, author.ID, created.AuthorID)
}

func TestCreateGuards(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name    string
		input   CreateInput
		wantErr error
	}{
		{name: "missing parent article", input: CreateInput{ArticleID: 999, Content: "hi"}, wantErr: entity.ErrArticleNotFound},
		// Existence is checked before content, so a blank comment on a
		// missing article still reports the article.
		{name: "missing article beats blank content", input: CreateInput{ArticleID: 999, Content: " "}, wantErr: entity.ErrArticleNotFound},
		{name: "blank content", input: CreateInput{ArticleID: 10, Content: "   "}, wantErr: entity.ErrInvalidContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input, author)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdate(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.Create(context.Background(), CreateInput{ArticleID: 10, Content: "old"}, author)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), UpdateInput{ID: created.ID, Content: "new"}, author)
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Content)
}

func TestUpdateGuards(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.Create(context.Background(), CreateInput{ArticleID: 10, Content: "old"}, author)
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   UpdateInput
		caller  *entity.User
		wantErr error
	}{
		{name: "missing comment", input: UpdateInput{ID: 999, Content: "new"}, caller: author, wantErr: entity.ErrCommentNotFound},
		{name: "not the owner", input: UpdateInput{ID: created.ID, Content: "new"}, caller: stranger, wantErr: entity.ErrForbiddenCommentEdit},
		{name: "blank content after guard", input: UpdateInput{ID: created.ID, Content: " "}, caller: author, wantErr: entity.ErrInvalidContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), tt.input, tt.caller)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDelete(t *testing.T) {
	svc, comments := newTestService()
	created, err := svc.Create(context.Background(), CreateInput{ArticleID: 10, Content: "bye"}, author)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID, author))
	assert.Equal(t, []int64{created.ID}, comments.deleted)

	err = svc.Delete(context.Background(), created.ID, author)
	assert.ErrorIs(t, err, entity.ErrCommentNotFound)
}

func TestDeleteNotOwner(t *testing.T) {
	svc, comments := newTestService()
	created, err := svc.Create(context.Background(), CreateInput{ArticleID: 10, Content: "bye"}, author)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID, stranger)
	assert.ErrorIs(t, err, entity.ErrForbiddenCommentEdit)
	assert.Empty(t, comments.deleted)
}
