package article

import (
	"encoding/json"
	"net/http"

	"microboard/internal/domain/entity"
	"microboard/internal/handler/http/auth"
	"microboard/internal/handler/http/pathutil"
	"microboard/internal/handler/http/respond"
	artUC "microboard/internal/usecase/article"
)

type UpdateHandler struct{ Svc *artUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFromContext(r.Context())
	if caller == nil {
		respond.Error(w, entity.ErrAuthenticationRequired)
		return
	}

	id, err := pathutil.ExtractID(r.URL.Path, "/api/v1/article/")
	if err != nil {
		respond.Error(w, entity.ErrArticleNotFound)
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

	updated, err := h.Svc.Update(r.Context(), artUC.UpdateInput{
		ID:      id,
		Title:   req.Title,
		Content: req.Content,
	}, caller)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Success(w, "article updated", toDTO(updated, caller.Email))
}
