package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStorage writes images below dir and serves them through the static route.
type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &LocalStorage{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (s *LocalStorage) path(objectName string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(objectName))
	if filepath.IsAbs(clean) || clean == "." || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("invalid object name %q", objectName)
	}
	return filepath.Join(s.dir, clean), nil
}

func (s *LocalStorage) UploadImage(ctx context.Context, fileName, contentType string, file io.Reader, size int64) (string, string, error) {
	name := objectName("", fileName, time.Now())
	dst, err := s.path(name)
	if err != nil {
		return "", "", err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", "", fmt.Errorf("failed to create file: %w", err)
	}

	written, err := io.Copy(f, io.LimitReader(file, size+1))
	closeErr := f.Close()
	if err == nil && written != size {
		err = fmt.Errorf("wrote %d bytes, expected %d", written, size)
	}
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(dst)
		return "", "", fmt.Errorf("failed to store image: %w", err)
	}

	if ctx.Err() != nil {
		os.Remove(dst)
		return "", "", ctx.Err()
	}

	return name, s.baseURL + "/" + name, nil
}
