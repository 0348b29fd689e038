// Package auth guards protected endpoints: it extracts the bearer token,
// validates it, resolves the caller account, and stores the caller in the
// request context for handlers downstream.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"microboard/internal/domain/entity"
	"microboard/internal/handler/http/respond"
	"microboard/internal/repository"
	authsvc "microboard/internal/service/auth"
)

type ctxKey string

const ctxCaller ctxKey = "caller"

// Authorizer authenticates requests to protected endpoints.
type Authorizer struct {
	Codec *authsvc.Codec
	Users repository.UserRepository
}

func NewAuthorizer(codec *authsvc.Codec, users repository.UserRepository) *Authorizer {
	return &Authorizer{Codec: codec, Users: users}
}

// Middleware enforces bearer authentication on every non-public path,
// regardless of method. Failures are uniform 401s: a missing header, a bad
// signature, an expired token, and an unresolvable subject are
// indistinguishable to the client. Infrastructure errors hit while resolving
// the caller are not auth failures and render as the generic 500.
func (a *Authorizer) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IsPublicEndpoint(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		caller, err := a.resolveCaller(r)
		if err != nil {
			if !isTokenError(err) {
				// Caller resolution failed for an infrastructure reason, not
				// because the token was bad; render the generic 500 instead
				// of disguising an outage as an auth failure.
				respond.Error(w, err)
				return
			}
			RecordAuthAttempt("failure")
			respond.Error(w, entity.ErrAuthenticationRequired)
			return
		}
		RecordAuthAttempt("success")

		ctx := context.WithValue(r.Context(), ctxCaller, caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Authorizer) resolveCaller(r *http.Request) (*entity.User, error) {
	const prefix = "Bearer "
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, prefix) {
		return nil, authsvc.ErrIllegalToken
	}
	tokenString := strings.TrimPrefix(authz, prefix)

	if err := a.Codec.Validate(tokenString, time.Now()); err != nil {
		return nil, err
	}
	claims, err := a.Codec.Decode(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Username == "" {
		return nil, authsvc.ErrIllegalToken
	}

	user, err := a.Users.FindByUsername(r.Context(), claims.Username)
	if err != nil {
		return nil, fmt.Errorf("find caller: %w", err)
	}
	if user == nil {
		// The account may have been withdrawn after the token was issued.
		return nil, authsvc.ErrIllegalToken
	}
	return user, nil
}

// isTokenError reports whether err is a rejected-credential failure, as
// opposed to an infrastructure error hit while resolving the caller.
func isTokenError(err error) bool {
	return errors.Is(err, authsvc.ErrIllegalToken) ||
		errors.Is(err, authsvc.ErrMalformedToken) ||
		errors.Is(err, authsvc.ErrUnsupportedAlgorithm) ||
		errors.Is(err, authsvc.ErrTokenExpired)
}

// CallerFromContext returns the authenticated caller stored by Middleware,
// or nil on an unauthenticated request.
func CallerFromContext(ctx context.Context) *entity.User {
	if user, ok := ctx.Value(ctxCaller).(*entity.User); ok {
		return user
	}
	return nil
}
