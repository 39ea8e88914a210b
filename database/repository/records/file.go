package recordsRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"casexpert/models"
)

// FileSnapshotBackend stores the snapshot as a single JSON document on disk.
type FileSnapshotBackend struct {
	path string
}

func NewFileSnapshotBackend(path string) *FileSnapshotBackend {
	return &FileSnapshotBackend{path: path}
}

func (b *FileSnapshotBackend) Name() string { return "file" }

func (b *FileSnapshotBackend) Load(ctx context.Context) (*models.Snapshot, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, os.ErrNotExist) {
		return &models.Snapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", b.path, err)
	}
	if len(data) == 0 {
		return &models.Snapshot{}, nil
	}
	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", b.path, err)
	}
	return &snap, nil
}

// Save writes to a temporary file in the same directory and renames it over
// the target, so readers never observe a partial document.
func (b *FileSnapshotBackend) Save(ctx context.Context, snap *models.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".db-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), b.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", b.path, err)
	}
	return nil
}

func (b *FileSnapshotBackend) Ping(ctx context.Context) error {
	_, err := os.Stat(filepath.Dir(b.path))
	return err
}
