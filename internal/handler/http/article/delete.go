package article

import (
	"net/http"

	"microboard/internal/domain/entity"
	"microboard/internal/handler/http/auth"
	"microboard/internal/handler/http/pathutil"
	"microboard/internal/handler/http/respond"
	artUC "microboard/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Svc.Delete(r.Context(), id, caller); err != nil {
		respond.Error(w, err)
		return
	}
	respond.Success(w, "article deleted", nil)
}
