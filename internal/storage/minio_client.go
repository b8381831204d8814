package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"collegeblog/internal/config"
	"collegeblog/internal/logger"
)

type MinIOClient struct {
	client  *minio.Client
	bucket  string
	folder  string
	baseURL string
}

// NewMinIOClient connects to the object store and creates the bucket if missing.
func NewMinIOClient(ctx context.Context, cfg config.MinIO) (*MinIOClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.BucketName, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.BucketName, err)
		}
		logger.Log.Infow("bucket created", "bucket", cfg.BucketName)
	}

	return &MinIOClient{
		client:  client,
		bucket:  cfg.BucketName,
		folder:  cfg.Folder,
		baseURL: publicBaseURL(cfg),
	}, nil
}

// publicBaseURL is where objects are reachable by browsers.
func publicBaseURL(cfg config.MinIO) string {
	if cfg.PublicURL != "" {
		return strings.TrimSuffix(cfg.PublicURL, "/")
	}
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return (&url.URL{Scheme: scheme, Host: cfg.Endpoint}).String()
}

func (m *MinIOClient) objectURL(name string) string {
	return fmt.Sprintf("%s/%s/%s", m.baseURL, m.bucket, name)
}

func (m *MinIOClient) UploadImage(ctx context.Context, fileName, contentType string, file io.Reader, size int64) (string, string, error) {
	now := time.Now()
	name := objectName(m.folder, fileName, now)

	_, err := m.client.PutObject(ctx, m.bucket, name, file, size,
		minio.PutObjectOptions{
			ContentType: contentTypeFor(fileName, contentType),
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	return name, m.objectURL(name), nil
}
