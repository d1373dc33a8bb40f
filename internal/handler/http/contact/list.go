package contact

import (
	"net/http"

	hhttp "intake-backend/internal/handler/http"
	"intake-backend/internal/handler/http/respond"
	contactUC "intake-backend/internal/usecase/contact"
)

type ListHandler struct{ Svc contactUC.Service }

// ServeHTTP returns all contacts with the internal identifier normalized
// to "id". The Content-Range header describes the full window; no real
// pagination windowing is applied.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	contacts, total, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(contacts))
	for _, c := range contacts {
		dtos = append(dtos, toDTO(c))
	}

	hhttp.UpdateContactsTotal(total)
	respond.ContentRange(w, "contacts", len(dtos))
	respond.JSON(w, http.StatusOK, dtos)
}
