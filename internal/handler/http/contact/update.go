package contact

import (
	"encoding/json"
	"errors"
	"net/http"

	"intake-backend/internal/handler/http/pathutil"
	"intake-backend/internal/handler/http/respond"
	"intake-backend/internal/repository"
	contactUC "intake-backend/internal/usecase/contact"
)

type UpdateHandler struct{ Svc contactUC.Service }

// ServeHTTP replaces the submitted fields of a contact wholesale and
// returns the post-update record. A missing ID yields 404.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/contacts/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		FirstName *string `json:"firstName"`
		LastName  *string `json:"lastName"`
		Email     *string `json:"email"`
		Country   *string `json:"country"`
		Problems  *string `json:"problems"`
		About     *string `json:"about"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	c, err := h.Svc.Update(r.Context(), id, repository.ContactUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Country:   req.Country,
		Problems:  req.Problems,
		About:     req.About,
	})
	if errors.Is(err, contactUC.ErrContactNotFound) {
		respond.SafeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(c))
}
