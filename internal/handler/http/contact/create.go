package contact

import (
	"encoding/json"
	"net/http"

	"intake-backend/internal/handler/http/respond"
	contactUC "intake-backend/internal/usecase/contact"
)

type CreateHandler struct{ Svc contactUC.Service }

// ServeHTTP persists a contact-form submission and returns 201 with a
// plain-text confirmation. The best-effort notification dispatched after
// the write never influences the response: once the store accepts the
// record the client sees success.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Country   string `json:"country"`
		Problems  string `json:"problems"`
		About     string `json:"about"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if _, err := h.Svc.Create(r.Context(), contactUC.CreateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Country:   req.Country,
		Problems:  req.Problems,
		About:     req.About,
	}); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.Text(w, http.StatusCreated, "Contact saved successfully")
}
