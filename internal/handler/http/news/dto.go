// Package news provides HTTP handlers for the news endpoints: multipart
// create and update with image uploads, cascading delete, and listing
// newest-first.
package news

import (
	"net/http"
	"time"

	"intake-backend/internal/domain/entity"
	newsUC "intake-backend/internal/usecase/news"
)

// maxMultipartMemory bounds the in-memory portion of multipart parsing;
// larger parts spill to temporary files.
const maxMultipartMemory = 32 << 20

// DTO represents the JSON structure for news data transfer.
// The store-internal identifier key is normalized to "id". Image IDs are
// a persistence detail of the blob cascade and are not exposed.
type DTO struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Images  []string  `json:"images"`
	Date    time.Time `json:"date"`
}

func toDTO(n *entity.NewsItem) DTO {
	images := n.Images
	if images == nil {
		images = []string{}
	}
	return DTO{
		ID:      n.ID,
		Title:   n.Title,
		Content: n.Content,
		Images:  images,
		Date:    n.Date,
	}
}

// imagesFromForm opens every uploaded file under the "images" form field.
// The caller owns the returned closers and must invoke them when done.
func imagesFromForm(r *http.Request) ([]newsUC.ImageUpload, func(), error) {
	var uploads []newsUC.ImageUpload
	var closers []func()
	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	if r.MultipartForm == nil {
		return nil, closeAll, nil
	}
	for _, header := range r.MultipartForm.File["images"] {
		f, err := header.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		closers = append(closers, func() { _ = f.Close() })
		uploads = append(uploads, newsUC.ImageUpload{
			Filename: header.Filename,
			Data:     f,
		})
	}
	return uploads, closeAll, nil
}
