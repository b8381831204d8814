package service

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"

	"collegeblog/internal/apperror"
	"collegeblog/internal/logger"
	"collegeblog/internal/models"
	"collegeblog/internal/storage"
)

type UploadService interface {
	UploadImage(ctx context.Context, fileName, contentType string, data []byte) (*models.UploadResult, error)
}

type uploadService struct {
	storage storage.Storage
	maxSize int64
}

func NewUploadService(store storage.Storage, maxSize int64) UploadService {
	return &uploadService{
		storage: store,
		maxSize: maxSize,
	}
}

func (s *uploadService) UploadImage(ctx context.Context, fileName, contentType string, data []byte) (*models.UploadResult, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperror.NewInvalidInput("File must be an image", nil)
	}

	if len(data) == 0 {
		return nil, apperror.NewInvalidInput("File is empty", nil)
	}

	if s.maxSize > 0 && int64(len(data)) > s.maxSize {
		return nil, apperror.NewInvalidInput(
			fmt.Sprintf("File too large: %s exceeds the %s limit",
				humanize.Bytes(uint64(len(data))), humanize.Bytes(uint64(s.maxSize))),
			nil,
		)
	}

	detected := mimetype.Detect(data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return nil, apperror.NewInvalidInput("File content is not an image", nil)
	}

	fileName = filepath.Base(fileName)
	if fileName == "." || fileName == "/" {
		fileName = "upload" + detected.Extension()
	}

	objectName, url, err := s.storage.UploadImage(ctx, fileName, detected.String(), bytes.NewReader(data), int64(len(data)))
	if err != nil {
		logger.Log.Errorw("image upload failed", "file", fileName, "size", len(data), "error", err)
		return nil, apperror.NewUpstreamFailure("Upload failed", err)
	}

	logger.Log.Infow("image uploaded", "object", objectName, "size", humanize.Bytes(uint64(len(data))))

	return &models.UploadResult{
		Filename: fileName,
		URL:      url,
		Success:  true,
	}, nil
}
