package user

import (
	"encoding/json"
	"net/http"

	"microboard/internal/domain/entity"
	"microboard/internal/handler/http/respond"
	authsvc "microboard/internal/service/auth"
)

type SignInHandler struct{ Auth *authsvc.Service }

func (h SignInHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, entity.ErrMalformedRequest)
		return
	}

	pair, err := h.Auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Success(w, "successfully signed in", TokenDTO{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}
