package comment

import (
	"net/http"

	"microboard/internal/domain/entity"
	"microboard/internal/handler/http/auth"
	"microboard/internal/handler/http/pathutil"
	"microboard/internal/handler/http/respond"
	cmtUC "microboard/internal/usecase/comment"
)

type DeleteHandler struct{ Svc *cmtUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Svc.Delete(r.Context(), id, caller); err != nil {
		respond.Error(w, err)
		return
	}
	respond.Success(w, "comment deleted", nil)
}
