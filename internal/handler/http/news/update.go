package news

import (
	"errors"
	"net/http"

	"intake-backend/internal/domain/entity"
	"intake-backend/internal/handler/http/pathutil"
	"intake-backend/internal/handler/http/respond"
	newsUC "intake-backend/internal/usecase/news"
)

type UpdateHandler struct{ Svc newsUC.Service }

// ServeHTTP updates a news item from a multipart form. Newly uploaded
// images are appended at the end of the stored sequence (additive merge);
// submitted text fields overwrite existing ones. A missing ID yields 404.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/news/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

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

	in := newsUC.UpdateInput{ID: id, Images: uploads}
	// Only text fields present in the form overwrite stored values.
	if r.Form.Has("title") {
		title := r.FormValue("title")
		in.Title = &title
	}
	if r.Form.Has("content") {
		content := r.FormValue("content")
		in.Content = &content
	}

	item, err := h.Svc.Update(r.Context(), in)
	if errors.Is(err, newsUC.ErrNewsNotFound) {
		respond.SafeError(w, http.StatusNotFound, err)
		return
	}
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

// isValidationError reports whether err carries a domain validation error.
func isValidationError(err error) bool {
	var ve *entity.ValidationError
	return errors.As(err, &ve)
}
