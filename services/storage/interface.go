package storage

import (
	"context"
	"io"

	"casexpert/models"
)

// AttachmentStore persists uploaded case documents.
type AttachmentStore interface {
	// Save stores r under a fresh name that keeps the extension of originalName.
	Save(ctx context.Context, r io.Reader, originalName string) (*models.Attachment, error)
	Delete(ctx context.Context, filename string) error
}

// MaxUploadSize bounds a single upload.
const MaxUploadSize = 10 << 20
