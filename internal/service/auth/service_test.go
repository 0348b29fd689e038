package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microboard/internal/domain/entity"
)

// stubUserRepo is an in-memory repository keyed by email and username.
type stubUserRepo struct {
	byEmail    map[string]*entity.User
	byUsername map[string]*entity.User
	findErr    error
}

func newStubUserRepo(users ...*entity.User) *stubUserRepo {
	repo := &stubUserRepo{
		byEmail:    make(map[string]*entity.User),
		byUsername: make(map[string]*entity.User),
	}
	for _, u := range users {
		repo.byEmail[u.Email] = u
		repo.byUsername[u.Username] = u
	}
	return repo
}

func (r *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	user.ID = int64(len(r.byEmail) + 1)
	r.byEmail[user.Email] = user
	r.byUsername[user.Username] = user
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.byEmail[email], nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.byUsername[username], nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := r.byUsername[username]
	return ok, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	for email, u := range r.byEmail {
		if u.ID == id {
			delete(r.byEmail, email)
			delete(r.byUsername, u.Username)
		}
	}
	return nil
}

func testUser(t *testing.T) *entity.User {
	t.Helper()
	hash, err := HashPassword("correct-password", 4)
	require.NoError(t, err)
	return &entity.User{
		ID:           1,
		Email:        "alice@example.com",
		Username:     "alice",
		PasswordHash: hash,
	}
}

func TestSignIn(t *testing.T) {
	user := testUser(t)
	svc := &Service{Users: newStubUserRepo(user), Codec: newTestCodec()}

	pair, err := svc.SignIn(context.Background(), "alice@example.com", "correct-password")
	require.NoError(t, err)
	require.NotNil(t, pair)

	claims, err := svc.Codec.Decode(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, SubjectAccess, claims.Subject)

	refreshClaims, err := svc.Codec.Decode(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, SubjectRefresh, refreshClaims.Subject)

	assert.NoError(t, svc.Codec.Validate(pair.AccessToken, time.Now()))
}

func TestSignInUnknownEmail(t *testing.T) {
	svc := &Service{Users: newStubUserRepo(), Codec: newTestCodec()}

	_, err := svc.SignIn(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
}

func TestSignInWrongPassword(t *testing.T) {
	svc := &Service{Users: newStubUserRepo(testUser(t)), Codec: newTestCodec()}

	_, err := svc.SignIn(context.Background(), "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, entity.ErrPasswordMismatch)
}

func TestVerifyCredentials(t *testing.T) {
	user := testUser(t)
	svc := &Service{Users: newStubUserRepo(user), Codec: newTestCodec()}

	got, err := svc.VerifyCredentials(context.Background(), "alice@example.com", "correct-password")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}
