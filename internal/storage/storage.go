package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"collegeblog/internal/config"
)

// Storage hosts uploaded images and returns their public URL.
type Storage interface {
	UploadImage(ctx context.Context, fileName, contentType string, file io.Reader, size int64) (objectName string, url string, err error)
}

// New builds the configured backend wrapped with retries.
func New(ctx context.Context, cfg *config.Config) (Storage, error) {
	var (
		backend Storage
		err     error
	)

	switch cfg.Storage.Backend {
	case config.StorageMinIO:
		backend, err = NewMinIOClient(ctx, cfg.Storage.MinIO)
	case config.StorageLocal:
		backend, err = NewLocalStorage(cfg.Storage.UploadDir, cfg.Storage.PublicBaseURL+"/static/"+relativeToStatic(cfg.Storage))
	default:
		err = fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	if err != nil {
		return nil, err
	}

	return NewRetrying(backend, cfg.Storage.MaxRetries), nil
}

// relativeToStatic returns the upload dir as a path under the static dir.
func relativeToStatic(cfg config.Storage) string {
	rel, err := filepath.Rel(cfg.StaticDir, cfg.UploadDir)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "uploads"
	}
	return filepath.ToSlash(rel)
}

// objectName builds "<prefix>/YYYY/MM/<uuid><ext>".
func objectName(prefix, fileName string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		ext = ".jpg"
	}

	name := fmt.Sprintf("%d/%02d/%s%s", now.Year(), now.Month(), uuid.New().String(), ext)
	if prefix = strings.Trim(prefix, "/"); prefix != "" {
		name = prefix + "/" + name
	}
	return name
}

func contentTypeFor(fileName, declared string) string {
	if declared != "" {
		return declared
	}
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
