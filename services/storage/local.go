package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"casexpert/models"

	"github.com/google/uuid"
)

// LocalStore writes uploads to a directory that is served under URLPrefix.
type LocalStore struct {
	Dir       string
	URLPrefix string
}

func NewLocalStore(dir, urlPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStore{Dir: dir, URLPrefix: urlPrefix}, nil
}

func (s *LocalStore) Save(ctx context.Context, r io.Reader, originalName string) (*models.Attachment, error) {
	filename := uuid.NewString() + filepath.Ext(originalName)
	dst, err := os.Create(filepath.Join(s.Dir, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, io.LimitReader(r, MaxUploadSize))
	if err != nil {
		os.Remove(dst.Name())
		return nil, fmt.Errorf("failed to save file: %w", err)
	}
	return &models.Attachment{
		Filename:     filename,
		URL:          s.URLPrefix + "/" + filename,
		Size:         size,
		OriginalName: originalName,
	}, nil
}

func (s *LocalStore) Delete(ctx context.Context, filename string) error {
	if err := os.Remove(filepath.Join(s.Dir, filepath.Base(filename))); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
