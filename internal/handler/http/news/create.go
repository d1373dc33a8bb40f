package news

import (
	"errors"
	"net/http"

	"intake-backend/internal/handler/http/respond"
	newsUC "intake-backend/internal/usecase/news"
)

type CreateHandler struct{ Svc newsUC.Service }

// ServeHTTP creates a news item from a multipart form. Attached images
// are uploaded to the blob store first; only the resulting URLs are
// persisted, in submission order. An upload failure aborts the request.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid multipart form"))
		return
	}

	uploads, closeFiles, err := imagesFromForm(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid image upload"))
		return
	}
	defer closeFiles()

	item, err := h.Svc.Create(r.Context(), newsUC.CreateInput{
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
		Images:  uploads,
	})
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, newsUC.ErrTooManyImages) || isValidationError(err) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(item))
}
