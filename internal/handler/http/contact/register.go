package contact

import (
	"net/http"

	contactUC "intake-backend/internal/usecase/contact"
)

// Register registers all contact-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc contactUC.Service) {
	mux.Handle("GET    /api/contacts", ListHandler{svc})
	mux.Handle("POST   /api/contacts", CreateHandler{svc})
	mux.Handle("PUT    /api/contacts/", UpdateHandler{svc})
	mux.Handle("DELETE /api/contacts/", DeleteHandler{svc})
}
