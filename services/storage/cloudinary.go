package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"casexpert/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryStore uploads attachments to a Cloudinary folder.
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret, folder string) (*CloudinaryStore, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStore{cld: cld, folder: folder}, nil
}

func (s *CloudinaryStore) Save(ctx context.Context, r io.Reader, originalName string) (*models.Attachment, error) {
	publicID := uuid.NewString()
	resp, err := s.cld.Upload.Upload(ctx, io.LimitReader(r, MaxUploadSize), uploader.UploadParams{
		PublicID:     publicID,
		Folder:       s.folder,
		ResourceType: "auto",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload error: %s", resp.Error.Message)
	}
	return &models.Attachment{
		Filename:     publicID + filepath.Ext(originalName),
		URL:          resp.SecureURL,
		Size:         int64(resp.Bytes),
		OriginalName: originalName,
	}, nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, filename string) error {
	publicID := filename[:len(filename)-len(filepath.Ext(filename))]
	if s.folder != "" {
		publicID = s.folder + "/" + publicID
	}
	resp, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	if resp.Error.Message != "" {
		return fmt.Errorf("cloudinary delete error: %s", resp.Error.Message)
	}
	return nil
}
