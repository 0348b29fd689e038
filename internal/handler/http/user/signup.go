package user

import (
	"encoding/json"
	"net/http"

	"microboard/internal/domain/entity"
	"microboard/internal/handler/http/respond"
	userUC "microboard/internal/usecase/user"
)

type SignUpHandler struct{ Svc *userUC.Service }

func (h SignUpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, entity.ErrMalformedRequest)
		return
	}

	created, err := h.Svc.SignUp(r.Context(), userUC.SignUpInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Success(w, "successfully signed up", toDTO(created))
}
