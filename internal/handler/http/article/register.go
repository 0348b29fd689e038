package article

import (
	"net/http"

	artUC "microboard/internal/usecase/article"
)

// Register wires the article endpoints. All of them are protected by the
// bearer middleware applied to the whole mux.
func Register(mux *http.ServeMux, svc *artUC.Service) {
	mux.Handle("POST   /api/v1/article", CreateHandler{Svc: svc})
	mux.Handle("PATCH  /api/v1/article/", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /api/v1/article/", DeleteHandler{Svc: svc})
}
