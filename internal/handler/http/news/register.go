package news

import (
	"net/http"

	newsUC "intake-backend/internal/usecase/news"
)

// Register registers all news-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc newsUC.Service) {
	mux.Handle("GET    /api/news", ListHandler{svc})
	mux.Handle("POST   /api/news", CreateHandler{svc})
	mux.Handle("PUT    /api/news/", UpdateHandler{svc})
	mux.Handle("DELETE /api/news/", DeleteHandler{svc})
}
