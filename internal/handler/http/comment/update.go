package comment

import (
	"encoding/json"
	"net/http"

	"microboard/internal/domain/entity"
	"microboard/internal/handler/http/auth"
	"microboard/internal/handler/http/pathutil"
	"microboard/internal/handler/http/respond"
	cmtUC "microboard/internal/usecase/comment"
)

type UpdateHandler struct{ Svc *cmtUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFromContext(r.Context())
	if caller == nil {
		respond.Error(w, entity.ErrAuthenticationRequired)
		return
	}

	id, err := pathutil.ExtractID(r.URL.Path, "/api/v1/comment/")
	if err != nil {
		respond.Error(w, entity.ErrCommentNotFound)
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, entity.ErrMalformedRequest)
		return
	}

	updated, err := h.Svc.Update(r.Context(), cmtUC.UpdateInput{
		ID:      id,
		Content: req.Content,
	}, caller)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Success(w, "comment updated", toDTO(updated, caller.Email))
}
