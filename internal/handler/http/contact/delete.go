package contact

import (
	"net/http"

	"intake-backend/internal/handler/http/pathutil"
	"intake-backend/internal/handler/http/respond"
	contactUC "intake-backend/internal/usecase/contact"
)

type DeleteHandler struct{ Svc contactUC.Service }

// ServeHTTP removes a contact by ID. The confirmation is returned whether
// or not a record existed: delete-by-id is idempotent.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/contacts/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.Text(w, http.StatusOK, "Contact deleted successfully")
}
