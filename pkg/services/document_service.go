package services

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/astraforge/astraforge/ent"
	"github.com/astraforge/astraforge/ent/document"
	"github.com/astraforge/astraforge/pkg/config"
	"github.com/astraforge/astraforge/pkg/database"
)

// DocumentUploader stages document bytes into a running sandbox. Satisfied by
// the sandbox lifecycle manager.
type DocumentUploader interface {
	Upload(ctx context.Context, sessionID, path string, content []byte) error
}

// DocumentService handles uploads into a conversation: validates against the
// quota config, stages the file under the sandbox uploads directory, and
// records a Document row.
type DocumentService struct {
	db       *database.Client
	cfg      *config.QuotaConfig
	uploader DocumentUploader
	uploads  string
}

// NewDocumentService creates a new DocumentService. workspacePath is the
// sandbox workspace root the uploads directory lives under.
func NewDocumentService(db *database.Client, cfg *config.QuotaConfig, uploader DocumentUploader, workspacePath string) *DocumentService {
	return &DocumentService{
		db:       db,
		cfg:      cfg,
		uploader: uploader,
		uploads:  path.Join(workspacePath, "uploads"),
	}
}

// extensionAllowed checks the filename against the configured allow-list.
func (s *DocumentService) extensionAllowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range s.cfg.AllowedDocExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Upload validates and stages a document for a conversation. The file lands
// at <workspace>/uploads/<filename> inside the sandbox and is recorded so the
// agent prompt can enumerate it.
func (s *DocumentService) Upload(ctx context.Context, runID, filename, contentType string, content []byte) (*ent.Document, error) {
	if runID == "" {
		return nil, NewValidationError("conversation_id", "required")
	}
	if filename == "" {
		return nil, NewValidationError("filename", "required")
	}
	if filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return nil, NewValidationError("filename", "must be a plain file name")
	}
	if !s.extensionAllowed(filename) {
		return nil, NewValidationError("filename", fmt.Sprintf("extension not allowed, must be one of %s", strings.Join(s.cfg.AllowedDocExtensions, ", ")))
	}
	if int64(len(content)) > s.cfg.MaxDocumentBytes {
		return nil, &QuotaExceededError{
			Limit:   "document_bytes",
			Current: len(content),
			Max:     int(s.cfg.MaxDocumentBytes),
		}
	}

	count, err := s.db.Document.Query().
		Where(document.ConversationIDEQ(runID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}
	if count >= s.cfg.MaxDocumentsPerSession {
		return nil, &QuotaExceededError{
			Limit:   "documents_per_session",
			Current: count,
			Max:     s.cfg.MaxDocumentsPerSession,
		}
	}

	storagePath := path.Join(s.uploads, filename)
	if err := s.uploader.Upload(ctx, runID, storagePath, content); err != nil {
		return nil, fmt.Errorf("failed to stage document in sandbox: %w", err)
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	doc, err := s.db.Document.Create().
		SetID(uuid.New().String()).
		SetConversationID(runID).
		SetFilename(filename).
		SetContentType(contentType).
		SetSizeBytes(int64(len(content))).
		SetStoragePath(storagePath).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to record document: %w", err)
	}
	return doc, nil
}

// List returns a conversation's documents in upload order.
func (s *DocumentService) List(ctx context.Context, runID string) ([]*ent.Document, error) {
	docs, err := s.db.Document.Query().
		Where(document.ConversationIDEQ(runID)).
		Order(ent.Asc(document.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}
