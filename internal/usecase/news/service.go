package news

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"intake-backend/internal/domain/entity"
	"intake-backend/internal/infra/blobstore"
	"intake-backend/internal/repository"
)

// MaxImagesPerRequest is the upper bound on images attached to a single
// create or update request.
const MaxImagesPerRequest = 5

// maxConcurrentUploads bounds parallel blob uploads within one request.
const maxConcurrentUploads = 3

// allowedImageExtensions is the fixed set of accepted raster formats.
var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ImageUpload is one image attached to a create or update request.
type ImageUpload struct {
	Filename string
	Data     io.Reader
}

// CreateInput represents the input parameters for creating a news item.
type CreateInput struct {
	Title   string
	Content string
	Images  []ImageUpload
}

// UpdateInput represents the input parameters for updating a news item.
// Nil text fields are left untouched; Images are appended to the stored
// sequence (additive merge).
type UpdateInput struct {
	ID      string
	Title   *string
	Content *string
	Images  []ImageUpload
}

// Service provides news management use cases. Image bytes never reach the
// record store: they are uploaded to the blob store first and only the
// resulting URLs and public IDs are persisted.
type Service struct {
	Repo  repository.NewsRepository
	Blobs blobstore.BlobStore
}

// Create uploads the attached images, then persists a news item whose
// images sequence holds the resulting URLs in submission order. Any
// upload failure aborts the whole request; nothing is persisted then.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.NewsItem, error) {
	uploads, err := s.uploadImages(ctx, in.Images)
	if err != nil {
		return nil, err
	}

	item := &entity.NewsItem{
		Title:   in.Title,
		Content: in.Content,
		Date:    time.Now(),
	}
	for _, u := range uploads {
		item.Images = append(item.Images, u.URL)
		item.ImageIDs = append(item.ImageIDs, u.PublicID)
	}

	if err := s.Repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create news item: %w", err)
	}
	return item, nil
}

// Update applies the submitted text fields and appends any newly uploaded
// images at the end of the stored sequence. Existing images are never
// removed or reordered. Returns ErrNewsNotFound when no record matches;
// the existence check runs before uploads so a miss leaves no orphan blobs.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.NewsItem, error) {
	if in.ID == "" {
		return nil, ErrInvalidNewsID
	}

	existing, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get news item: %w", err)
	}
	if existing == nil {
		return nil, ErrNewsNotFound
	}

	uploads, err := s.uploadImages(ctx, in.Images)
	if err != nil {
		return nil, err
	}

	upd := repository.NewsUpdate{
		Title:   in.Title,
		Content: in.Content,
	}
	for _, u := range uploads {
		upd.AddImages = append(upd.AddImages, u.URL)
		upd.AddImageIDs = append(upd.AddImageIDs, u.PublicID)
	}

	item, err := s.Repo.Update(ctx, in.ID, upd)
	if err != nil {
		return nil, fmt.Errorf("update news item: %w", err)
	}
	if item == nil {
		return nil, ErrNewsNotFound
	}
	return item, nil
}

// Delete removes a news item after deleting every blob it references.
//
// The blob phase is best-effort with per-image isolation: one failed
// deletion is logged and never aborts the remaining deletions nor the
// final record removal. A record with zero images skips the blob phase
// entirely.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidNewsID
	}

	item, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get news item: %w", err)
	}
	if item == nil {
		return ErrNewsNotFound
	}

	for i, url := range item.Images {
		publicID := ""
		if i < len(item.ImageIDs) {
			publicID = item.ImageIDs[i]
		}
		if publicID == "" {
			// Older records persisted before public IDs were stored
			// alongside URLs; fall back to the URL-shape contract.
			publicID = blobstore.PublicIDFromURL(url)
		}
		if err := s.Blobs.Delete(ctx, publicID); err != nil {
			slog.Warn("blob deletion failed, continuing cascade",
				slog.String("news_id", id),
				slog.String("public_id", publicID),
				slog.Any("error", err))
		}
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete news item: %w", err)
	}
	return nil
}

// List retrieves all news items, newest first, along with the total count.
func (s *Service) List(ctx context.Context) ([]*entity.NewsItem, int64, error) {
	items, err := s.Repo.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list news items: %w", err)
	}
	return items, int64(len(items)), nil
}

// uploadImages validates and uploads the attached images, preserving
// submission order in the returned slice. Uploads run with bounded
// parallelism; the first failure cancels the rest and fails the request.
func (s *Service) uploadImages(ctx context.Context, images []ImageUpload) ([]*blobstore.UploadResult, error) {
	if len(images) == 0 {
		return nil, nil
	}
	if len(images) > MaxImagesPerRequest {
		return nil, ErrTooManyImages
	}
	for _, img := range images {
		ext := strings.ToLower(path.Ext(img.Filename))
		if !allowedImageExtensions[ext] {
			return nil, &entity.ValidationError{
				Field:   "images",
				Message: fmt.Sprintf("invalid image format %q: allowed formats are jpg, jpeg, png, gif, webp", ext),
			}
		}
	}

	results := make([]*blobstore.UploadResult, len(images))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentUploads)
	for i, img := range images {
		g.Go(func() error {
			res, err := s.Blobs.Upload(gctx, img.Data, img.Filename)
			if err != nil {
				return fmt.Errorf("upload image %q: %w", img.Filename, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
