package comment

import (
	"encoding/json"
	"net/http"

	"microboard/internal/domain/entity"
	"microboard/internal/handler/http/auth"
	"microboard/internal/handler/http/respond"
	cmtUC "microboard/internal/usecase/comment"
)

type CreateHandler struct{ Svc *cmtUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFromContext(r.Context())
	if caller == nil {
		respond.Error(w, entity.ErrAuthenticationRequired)
		return
	}

	var req struct {
		ArticleID int64  `json:"articleId"`
		Content   string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, entity.ErrMalformedRequest)
		return
	}

	created, err := h.Svc.Create(r.Context(), cmtUC.CreateInput{
		ArticleID: req.ArticleID,
		Content:   req.Content,
	}, caller)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Success(w, "comment created", toDTO(created, caller.Email))
}
