package comment

import (
	"net/http"

	cmtUC "microboard/internal/usecase/comment"
)

// Register wires the comment endpoints. All of them are protected by the
// bearer middleware applied to the whole mux.
func Register(mux *http.ServeMux, svc *cmtUC.Service) {
	mux.Handle("POST   /api/v1/comment", CreateHandler{Svc: svc})
	mux.Handle("PATCH  /api/v1/comment/", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /api/v1/comment/", DeleteHandler{Svc: svc})
}
