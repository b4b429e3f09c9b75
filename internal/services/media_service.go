package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/spydz12/Eleman-Shoes/internal/clients"
	"github.com/spydz12/Eleman-Shoes/internal/models"
)

// ErrUploadFailed wraps storage failures; handlers report it as UPLOAD_FAILED
var ErrUploadFailed = errors.New("upload failed")

// UploadFile is one file received from a multipart form
type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// ImageUploadResult lists the stored URLs and the skipped files
type ImageUploadResult struct {
	URLs     []string                 `json:"urls"`
	Rejected []models.UploadRejection `json:"rejected"`
}

// MediaService builds storage paths and uploads through the document client
type MediaService struct {
	docs   clients.DocumentClient
	now    func() time.Time
	logger *logrus.Entry
}

// NewMediaService creates a media service
func NewMediaService(docs clients.DocumentClient) *MediaService {
	return &MediaService{docs: docs, now: time.Now, logger: logrus.WithField("component", "media")}
}

// ProductImagePath returns products/{unixMillis}_{random}_{filename}
func ProductImagePath(now time.Time, random, filename string) string {
	return fmt.Sprintf("products/%d_%s_%s", now.UnixMilli(), random, cleanFilename(filename))
}

// LogoPath returns logos/{brand}_{unixMillis}_{filename}
func LogoPath(brand models.ProductBrand, now time.Time, filename string) string {
	return fmt.Sprintf("logos/%s_%d_%s", brand, now.UnixMilli(), cleanFilename(filename))
}

// BrandLogoPath returns brands/{id}/logo_{filename}
func BrandLogoPath(id uuid.UUID, filename string) string {
	return fmt.Sprintf("brands/%s/logo_%s", id, cleanFilename(filename))
}

// InvoicePDFPath returns invoices/{id}.pdf
func InvoicePDFPath(id uuid.UUID) string {
	return fmt.Sprintf("invoices/%s.pdf", id)
}

var storagePrefixes = []string{"products/", "logos/", "brands/", "invoices/"}

// StoragePath recovers the object path from the URL of a stored file
func StoragePath(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	p := u.Path
	for _, prefix := range storagePrefixes {
		if strings.HasPrefix(p, prefix) {
			return p, true
		}
		if i := strings.Index(p, "/"+prefix); i >= 0 {
			return p[i+1:], true
		}
	}
	return "", false
}

func cleanFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" {
		return "file"
	}
	return name
}

func randomKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
}

// UploadProductImages uploads as many valid images as still fit next to
// existingCount images. Files that are not images or exceed 5MB are rejected
// and the remaining ones are truncated to the free slots. When one upload
// fails the files already stored by this call are deleted again.
func (s *MediaService) UploadProductImages(ctx context.Context, existingCount int, files []UploadFile) (*ImageUploadResult, error) {
	remaining := models.MaxImagesPerColor - existingCount
	if remaining <= 0 {
		return nil, models.NewValidationError("images", "Maximum %d images per color", models.MaxImagesPerColor)
	}

	result := &ImageUploadResult{URLs: []string{}, Rejected: []models.UploadRejection{}}
	valid := make([]UploadFile, 0, len(files))
	for _, f := range files {
		if rejection := models.CheckImageUpload(f.Filename, f.ContentType, f.Size); rejection != nil {
			result.Rejected = append(result.Rejected, *rejection)
			continue
		}
		valid = append(valid, f)
	}
	if len(valid) > remaining {
		valid = valid[:remaining]
	}

	for _, f := range valid {
		p := ProductImagePath(s.now(), randomKey(), f.Filename)
		location, err := s.upload(ctx, p, f, "product", "")
		if err != nil {
			s.Discard(ctx, result.URLs...)
			return nil, err
		}
		result.URLs = append(result.URLs, location)
	}
	return result, nil
}

// UploadLogo stores a brand logo for the settings page
func (s *MediaService) UploadLogo(ctx context.Context, brand models.ProductBrand, f UploadFile) (string, error) {
	if rejection := models.CheckImageUpload(f.Filename, f.ContentType, f.Size); rejection != nil {
		return "", models.NewValidationError("file", "%s", rejection.Reason)
	}
	return s.upload(ctx, LogoPath(brand, s.now(), f.Filename), f, "logo", string(brand))
}

// UploadBrandLogo stores the logo of a brand record
func (s *MediaService) UploadBrandLogo(ctx context.Context, id uuid.UUID, f UploadFile) (string, error) {
	if rejection := models.CheckImageUpload(f.Filename, f.ContentType, f.Size); rejection != nil {
		return "", models.NewValidationError("file", "%s", rejection.Reason)
	}
	return s.upload(ctx, BrandLogoPath(id, f.Filename), f, "brand", id.String())
}

// UploadInvoicePDF stores a rendered invoice
func (s *MediaService) UploadInvoicePDF(ctx context.Context, id uuid.UUID, pdf []byte) (string, error) {
	f := UploadFile{Filename: id.String() + ".pdf", ContentType: "application/pdf", Size: int64(len(pdf)), Data: pdf}
	return s.upload(ctx, InvoicePDFPath(id), f, "invoice", id.String())
}

func (s *MediaService) upload(ctx context.Context, p string, f UploadFile, entityType, entityID string) (string, error) {
	if s.docs == nil {
		return "", fmt.Errorf("%w: storage is not configured", ErrUploadFailed)
	}
	resp, err := s.docs.UploadDocument(ctx, &clients.DocumentUploadRequest{
		Path:        p,
		Filename:    path.Base(p),
		ContentType: f.ContentType,
		Data:        f.Data,
		IsPublic:    true,
		EntityType:  entityType,
		EntityID:    entityID,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return resp.URL, nil
}

// Discard deletes stored files by URL. Failures are logged only.
func (s *MediaService) Discard(ctx context.Context, urls ...string) {
	if s.docs == nil {
		return
	}
	for _, u := range urls {
		p, ok := StoragePath(u)
		if !ok {
			continue
		}
		if err := s.docs.DeleteDocument(ctx, p); err != nil {
			s.logger.WithError(err).WithField("path", p).Warn("Failed to delete stored file")
		}
	}
}
