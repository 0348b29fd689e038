package user

import (
	"encoding/json"
	"net/http"

	"microboard/internal/domain/entity"
	"microboard/internal/handler/http/auth"
	"microboard/internal/handler/http/respond"
	userUC "microboard/internal/usecase/user"
)

type WithdrawalHandler struct{ Svc *userUC.Service }

func (h WithdrawalHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFromContext(r.Context())
	if caller == nil {
		respond.Error(w, entity.ErrAuthenticationRequired)
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, entity.ErrMalformedRequest)
		return
	}

	if err := h.Svc.Withdrawal(r.Context(), req.Email, req.Password, caller); err != nil {
		respond.Error(w, err)
		return
	}
	respond.Success(w, "successfully withdrawn", nil)
}
