package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microboard/internal/domain/entity"
	"microboard/internal/handler/http/auth"
	"microboard/internal/handler/http/respond"
	authsvc "microboard/internal/service/auth"
	userUC "microboard/internal/usecase/user"
)

type stubUserRepo struct {
	byEmail    map[string]*entity.User
	byUsername map[string]*entity.User
	deleted    []int64
	nextID     int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail:    make(map[string]*entity.User),
		byUsername: make(map[string]*entity.User),
		nextID:     1,
	}
}

func (r *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	user.ID = r.nextID
	r.nextID++
	r.byEmail[user.Email] = user
	r.byUsername[user.Username] = user
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
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
	r.deleted = append(r.deleted, id)
	for email, u := range r.byEmail {
		if u.ID == id {
			delete(r.byEmail, email)
			delete(r.byUsername, u.Username)
		}
	}
	return nil
}

const testSecret = "c2VjcmV0LXNlY3JldC1zZWNyZXQtc2VjcmV0LTMyIQ=="

// newServer builds the account endpoints behind the bearer middleware, the
// same shape the real server uses.
func newServer(repo *stubUserRepo) (http.Handler, *authsvc.Codec) {
	codec := authsvc.NewCodec(testSecret, 30*time.Minute, 168*time.Hour)
	authSvc := &authsvc.Service{Users: repo, Codec: codec}
	svc := &userUC.Service{Users: repo, Auth: authSvc, BcryptCost: 4}

	passthrough := func(next http.Handler) http.Handler { return next }

	mux := http.NewServeMux()
	Register(mux, svc, authSvc, passthrough)
	return auth.NewAuthorizer(codec, repo).Middleware(mux), codec
}

func do(t *testing.T, handler http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) respond.Envelope {
	t.Helper()
	var env respond.Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func TestSignUpEndpoint(t *testing.T) {
	handler, _ := newServer(newStubUserRepo())

	rec := do(t, handler, http.MethodPost, "/api/v1/sign-up",
		`{"email":"alice@example.com","username":"alice","password":"pw-1"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, respond.ResultSuccess, env.Result)
	assert.Equal(t, "successfully signed up", env.Message)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", data["email"])
	assert.Equal(t, "alice", data["username"])
	assert.NotContains(t, rec.Body.String(), "pw-1")
}

func TestSignUpEndpointFailures(t *testing.T) {
	repo := newStubUserRepo()
	handler, _ := newServer(repo)
	do(t, handler, http.MethodPost, "/api/v1/sign-up",
		`{"email":"alice@example.com","username":"alice","password":"pw-1"}`, "")

	tests := []struct {
		name        string
		body        string
		wantCode    int
		wantMessage string
	}{
		{
			name:        "bad json",
			body:        `{"email":`,
			wantCode:    http.StatusBadRequest,
			wantMessage: "malformed request body",
		},
		{
			name:        "invalid email",
			body:        `{"email":"nope","username":"bob","password":"pw"}`,
			wantCode:    http.StatusBadRequest,
			wantMessage: "invalid email format",
		},
		{
			name:        "duplicate email",
			body:        `{"email":"alice@example.com","username":"bob","password":"pw"}`,
			wantCode:    http.StatusBadRequest,
			wantMessage: "an account with this email already exists",
		},
		{
			name:        "duplicate username",
			body:        `{"email":"bob@example.com","username":"alice","password":"pw"}`,
			wantCode:    http.StatusBadRequest,
			wantMessage: "this username already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, handler, http.MethodPost, "/api/v1/sign-up", tt.body, "")
			assert.Equal(t, tt.wantCode, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.Equal(t, respond.ResultFailure, env.Result)
			assert.Equal(t, tt.wantMessage, env.Message)
		})
	}
}

func TestSignInEndpoint(t *testing.T) {
	handler, _ := newServer(newStubUserRepo())
	do(t, handler, http.MethodPost, "/api/v1/sign-up",
		`{"email":"alice@example.com","username":"alice","password":"pw-1"}`, "")

	rec := do(t, handler, http.MethodPost, "/api/v1/sign-in",
		`{"email":"alice@example.com","password":"pw-1"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "successfully signed in", env.Message)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, data["accessToken"])
	assert.NotEmpty(t, data["refreshToken"])
}

func TestSignInEndpointRejects(t *testing.T) {
	handler, _ := newServer(newStubUserRepo())
	do(t, handler, http.MethodPost, "/api/v1/sign-up",
		`{"email":"alice@example.com","username":"alice","password":"pw-1"}`, "")

	rec := do(t, handler, http.MethodPost, "/api/v1/sign-in",
		`{"email":"alice@example.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, handler, http.MethodPost, "/api/v1/sign-in",
		`{"email":"ghost@example.com","password":"pw-1"}`, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWithdrawalEndpoint(t *testing.T) {
	repo := newStubUserRepo()
	handler, codec := newServer(repo)
	do(t, handler, http.MethodPost, "/api/v1/sign-up",
		`{"email":"alice@example.com","username":"alice","password":"pw-1"}`, "")

	token, err := codec.Issue("alice", "", time.Now())
	require.NoError(t, err)

	rec := do(t, handler, http.MethodDelete, "/api/v1/withdrawal",
		`{"email":"alice@example.com","password":"pw-1"}`, token)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "successfully withdrawn", env.Message)
	assert.Len(t, repo.deleted, 1)
}

func TestWithdrawalEndpointRequiresToken(t *testing.T) {
	handler, _ := newServer(newStubUserRepo())

	rec := do(t, handler, http.MethodDelete, "/api/v1/withdrawal",
		`{"email":"alice@example.com","password":"pw-1"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
