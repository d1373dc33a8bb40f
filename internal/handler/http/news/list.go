package news

import (
	"net/http"

	hhttp "intake-backend/internal/handler/http"
	"intake-backend/internal/handler/http/respond"
	newsUC "intake-backend/internal/usecase/news"
)

type ListHandler struct{ Svc newsUC.Service }

// ServeHTTP returns all news items ordered by date descending (newest
// first) with the internal identifier normalized to "id".
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	items, total, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toDTO(item))
	}

	hhttp.UpdateNewsTotal(total)
	respond.ContentRange(w, "news", len(dtos))
	respond.JSON(w, http.StatusOK, dtos)
}
