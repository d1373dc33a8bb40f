package news

import (
	"errors"
	"net/http"

	"intake-backend/internal/handler/http/pathutil"
	"intake-backend/internal/handler/http/respond"
	newsUC "intake-backend/internal/usecase/news"
)

type DeleteHandler struct{ Svc newsUC.Service }

// ServeHTTP deletes a news item. Every referenced blob is deleted first
// (best-effort per image); the record is removed afterwards regardless of
// individual blob failures.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/news/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	err = h.Svc.Delete(r.Context(), id)
	if errors.Is(err, newsUC.ErrNewsNotFound) {
		respond.SafeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.Text(w, http.StatusOK, "News item deleted successfully")
}
