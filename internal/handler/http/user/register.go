package user

import (
	"net/http"

	authsvc "microboard/internal/service/auth"
	userUC "microboard/internal/usecase/user"
)

// Register wires the account endpoints. Sign-up and sign-in are public and
// wrapped by the caller-supplied rate limiter; withdrawal goes through the
// bearer middleware applied to the whole mux.
func Register(mux *http.ServeMux, svc *userUC.Service, authSvc *authsvc.Service, limit func(http.Handler) http.Handler) {
	mux.Handle("POST   /api/v1/sign-up", limit(SignUpHandler{Svc: svc}))
	mux.Handle("POST   /api/v1/sign-in", limit(SignInHandler{Auth: authSvc}))
	mux.Handle("DELETE /api/v1/withdrawal", WithdrawalHandler{Svc: svc})
}
