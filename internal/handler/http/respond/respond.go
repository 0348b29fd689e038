// Package respond writes JSON responses in the service's uniform envelope and
// translates errors at the HTTP boundary. Internal error details are logged,
// never returned to clients.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"microboard/internal/domain/entity"
)

// Result values carried in the envelope.
const (
	ResultSuccess = "SUCCESS"
	ResultFailure = "FAILURE"
)

// Envelope is the uniform response body. Data is omitted when nil.
type Envelope struct {
	Code    int    `json:"code"`
	Result  string `json:"result"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// JSON writes a JSON response with the given status code and body.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers already sent; nothing to do but log.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Success writes a 200 envelope with the given message and optional data.
func Success(w http.ResponseWriter, message string, data any) {
	JSON(w, http.StatusOK, Envelope{
		Code:    http.StatusOK,
		Result:  ResultSuccess,
		Message: message,
		Data:    data,
	})
}

// Error translates err into a failure envelope. Domain errors carry their own
// status, code, and user-facing message; anything else is logged with details
// and reported as a generic 500.
func Error(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	var domainErr *entity.DomainError
	if errors.As(err, &domainErr) {
		JSON(w, domainErr.HTTPStatus, Envelope{
			Code:    domainErr.Code,
			Result:  ResultFailure,
			Message: domainErr.Message,
		})
		return
	}

	slog.Default().Error("internal server error",
		slog.String("error", SanitizeError(err)))
	JSON(w, http.StatusInternalServerError, Envelope{
		Code:    http.StatusInternalServerError,
		Result:  ResultFailure,
		Message: "internal server error",
	})
}
