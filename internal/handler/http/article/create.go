package article

import (
	"encoding/json"
	"net/http"

	"microboard/internal/domain/entity"
	"microboard/internal/handler/http/auth"
	"microboard/internal/handler/http/respond"
	artUC "microboard/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFromContext(r.Context())
	if caller == nil {
		respond.Error(w, entity.ErrAuthenticationRequired)
		return
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, entity.ErrMalformedRequest)
		return
	}

	created, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:   req.Title,
		Content: req.Content,
	}, caller)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Success(w, "article created", toDTO(created, caller.Email))
}
