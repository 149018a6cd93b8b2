package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"
)

// GCSUploader copies finished exports into a bucket under exports/.
type GCSUploader struct {
	client *storage.Client
	bucket string
}

// NewGCSUploader uses Application Default Credentials.
func NewGCSUploader(ctx context.Context, bucket string) (*GCSUploader, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	if _, err := client.Bucket(bucket).Attrs(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("gcs bucket %q not found or not accessible: %w", bucket, err)
	}
	return &GCSUploader{client: client, bucket: bucket}, nil
}

// Upload streams the file at path and returns its gs:// URI.
func (u *GCSUploader) Upload(ctx context.Context, path, contentType string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open export for upload: %w", err)
	}
	defer f.Close()

	object := "exports/" + filepath.Base(path)
	wc := u.client.Bucket(u.bucket).Object(object).NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := io.Copy(wc, f); err != nil {
		_ = wc.Close()
		return "", fmt.Errorf("upload export to gcs: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("finalize gcs upload: %w", err)
	}
	return fmt.Sprintf("gs://%s/%s", u.bucket, object), nil
}

// Close releases the underlying client.
func (u *GCSUploader) Close() error {
	return u.client.Close()
}
