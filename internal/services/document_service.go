package services

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"mskn-backend/internal/access"
	"mskn-backend/internal/apperr"
	"mskn-backend/internal/logger"
	"mskn-backend/internal/models"
	"mskn-backend/internal/storage"
	"mskn-backend/internal/timeutil"
	"mskn-backend/internal/validation"
)

const msgDocumentNotFound = "Document not found"

// ObjectStore keeps uploaded file contents. *storage.S3Store implements it.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, objectURL string) error
}

// FileUpload is the file part of a multipart upload.
type FileUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type DocumentService struct {
	Repo   DocumentStore
	Scopes Scoper
	// Objects is nil when no bucket is configured; documents then get a
	// placeholder url and only metadata is kept.
	Objects ObjectStore
	now     func() time.Time
}

func NewDocumentService(repo DocumentStore, scopes Scoper, objects ObjectStore) *DocumentService {
	return &DocumentService{Repo: repo, Scopes: scopes, Objects: objects, now: timeutil.Now}
}

func (s *DocumentService) List(ctx context.Context, id access.Identity, f models.RecordFilter) ([]*models.Document, error) {
	scope, err := resolve(ctx, s.Scopes, id)
	if err != nil {
		return nil, err
	}
	docs, err := s.Repo.List(ctx, scope.Narrow(f))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return docs, nil
}

func (s *DocumentService) Get(ctx context.Context, id access.Identity, documentID string) (*models.Document, error) {
	d, err := s.Repo.Get(ctx, documentID)
	if err != nil {
		return nil, lookupError(err, msgDocumentNotFound)
	}
	scope, err := resolve(ctx, s.Scopes, id)
	if err != nil {
		return nil, err
	}
	if !scope.CanSeeRecord(models.Deref(d.PropertyID), models.Deref(d.TenantID)) {
		return nil, denied()
	}
	return d, nil
}

// Upload stores the document metadata and, when both a file and an object
// store are present, the file itself.
func (s *DocumentService) Upload(ctx context.Context, id access.Identity, req *models.UploadDocumentRequest, file *FileUpload) (*models.Document, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	scope, err := resolve(ctx, s.Scopes, id)
	if err != nil {
		return nil, err
	}
	if !scope.CanSeeRecord(models.Deref(req.PropertyID), models.Deref(req.TenantID)) {
		return nil, denied()
	}

	now := s.now()
	url := storage.PlaceholderURL(req.Name, now)
	if file != nil && s.Objects != nil {
		filename := file.Filename
		if filename == "" {
			filename = req.Name
		}
		stored, err := s.Objects.Put(ctx, storage.ObjectKey(filename, now), file.ContentType, file.Body)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		url = stored
	}

	d := &models.Document{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Type:         req.Type,
		URL:          url,
		PropertyID:   req.PropertyID,
		TenantID:     req.TenantID,
		LeaseID:      req.LeaseID,
		UploadedDate: now,
		UploadedBy:   id.UserID,
	}
	if err := s.Repo.Create(ctx, d); err != nil {
		return nil, writeError(err, msgDocumentNotFound, "create document")
	}
	return d, nil
}

// Delete removes the metadata row, then the stored object. A failed object
// delete is logged and does not fail the request.
func (s *DocumentService) Delete(ctx context.Context, id access.Identity, documentID string) error {
	d, err := s.Get(ctx, id, documentID)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, documentID); err != nil {
		return writeError(err, msgDocumentNotFound, "delete document")
	}
	if s.Objects != nil {
		if err := s.Objects.Delete(ctx, d.URL); err != nil {
			logger.For("DocumentService").WithError(err).WithField("document_id", documentID).Warn("Stored object not removed")
		}
	}
	return nil
}
