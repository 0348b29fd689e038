package entity

import "net/http"

// DomainError is a typed domain failure. It carries the HTTP status the
// boundary should render, a fixed numeric code, and the user-facing message.
// Services return these values unmodified; the respond package is the single
// place that translates them into the response envelope.
type DomainError struct {
	HTTPStatus int
	Code       int
	Message    string
}

// Error returns the user-facing message, implementing the error interface.
func (e *DomainError) Error() string { return e.Message }

// Validation failures (400).
var (
	ErrMalformedRequest  = &DomainError{HTTPStatus: http.StatusBadRequest, Code: 400, Message: "malformed request body"}
	ErrInvalidEmail      = &DomainError{HTTPStatus: http.StatusBadRequest, Code: 400, Message: "invalid email format"}
	ErrDuplicateEmail    = &DomainError{HTTPStatus: http.StatusBadRequest, Code: 400, Message: "an account with this email already exists"}
	ErrDuplicateUsername = &DomainError{HTTPStatus: http.StatusBadRequest, Code: 400, Message: "this username already exists"}
	ErrInvalidTitle      = &DomainError{HTTPStatus: http.StatusBadRequest, Code: 400, Message: "title must not be blank"}
	ErrInvalidContent    = &DomainError{HTTPStatus: http.StatusBadRequest, Code: 400, Message: "content must not be blank"}
)

// Authentication failures (401).
var (
	ErrPasswordMismatch = &DomainError{HTTPStatus: http.StatusUnauthorized, Code: 401, Message: "password does not match"}

	// ErrAuthenticationRequired is the uniform failure for every rejected
	// bearer token: missing, malformed, expired, or carrying a subject that
	// cannot be resolved. Resolution failures deliberately map here rather
	// than to ErrUserNotFound so account existence cannot be probed.
	ErrAuthenticationRequired = &DomainError{HTTPStatus: http.StatusUnauthorized, Code: 401, Message: "authentication required"}
)

// Ownership violations (403).
var (
	ErrForbiddenArticleEdit = &DomainError{HTTPStatus: http.StatusForbidden, Code: 403, Message: "no edit permission for this article"}
	ErrForbiddenCommentEdit = &DomainError{HTTPStatus: http.StatusForbidden, Code: 403, Message: "no edit permission for this comment"}
	ErrForbiddenWithdrawal  = &DomainError{HTTPStatus: http.StatusForbidden, Code: 403, Message: "no withdrawal permission for this account"}
)

// Missing resources (404).
var (
	ErrUserNotFound    = &DomainError{HTTPStatus: http.StatusNotFound, Code: 404, Message: "no such user"}
	ErrArticleNotFound = &DomainError{HTTPStatus: http.StatusNotFound, Code: 404, Message: "no such article"}
	ErrCommentNotFound = &DomainError{HTTPStatus: http.StatusNotFound, Code: 404, Message: "no such comment"}
)
