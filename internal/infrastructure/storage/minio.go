package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/johnquangdev/meeting-actions/pkg/config"
)

// MinIOStore keeps uploads as objects in a MinIO/S3 bucket
type MinIOStore struct {
	client *minio.Client
	bucket string
}

// NewMinIOStore creates a MinIO client and makes sure the bucket exists
func NewMinIOStore(ctx context.Context, cfg *config.StorageConfig) (*MinIOStore, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	store := &MinIOStore{
		client: minioClient,
		bucket: cfg.BucketName,
	}

	// MinIO often starts alongside the API; give it a moment
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 1 * time.Second
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	if err := backoff.Retry(func() error { return store.ensureBucket(ctx) }, backoff.WithContext(bo, ctx)); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return store, nil
}

// ensureBucket creates the bucket when missing. Transcripts stay private.
func (m *MinIOStore) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// Save uploads the transcript as a text object
func (m *MinIOStore) Save(ctx context.Context, filename string, r io.Reader, size int64) (string, error) {
	name := "transcripts/" + objectName(filename)
	_, err := m.client.PutObject(ctx, m.bucket, name, r, size, minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	return name, nil
}

// Read downloads a stored transcript
func (m *MinIOStore) Read(ctx context.Context, ref string) (string, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, ref, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to get object: %w", err)
	}
	defer obj.Close()

	b, err := io.ReadAll(obj)
	if err != nil {
		return "", fmt.Errorf("failed to read object: %w", err)
	}
	return string(b), nil
}
