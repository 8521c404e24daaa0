package infra

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/madmin-go/v3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/tnqbao/gau-gallery-service/config"
)

type MinioClient struct {
	Admin    *madmin.AdminClient
	Client   *minio.Client
	Endpoint string
	Bucket   string
}

func InitMinioClient(cfg *config.EnvConfig) *MinioClient {
	endpoint := cfg.Minio.Endpoint
	if endpoint == "" {
		panic("MinIO endpoint is not configured")
	}

	rootUser := cfg.Minio.RootUser
	if rootUser == "" {
		panic("MinIO root user is not configured")
	}

	rootPassword := cfg.Minio.RootPassword
	if rootPassword == "" {
		panic("MinIO root password is not configured")
	}

	madminClient, err := madmin.New(endpoint, rootUser, rootPassword, cfg.Minio.UseSSL)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO admin client: %v", err))
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(rootUser, rootPassword, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO client: %v", err))
	}

	return &MinioClient{
		Admin:    madminClient,
		Client:   minioClient,
		Endpoint: endpoint,
		Bucket:   cfg.Minio.Bucket,
	}
}

// EnsureBucket creates the media bucket if it doesn't exist yet.
func (m *MinioClient) EnsureBucket(ctx context.Context) error {
	exists, err := m.Client.BucketExists(ctx, m.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check if bucket exists: %w", err)
	}

	if !exists {
		if err := m.Client.MakeBucket(ctx, m.Bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// PresignedGetURL signs a time-limited GET URL for one object key
// (bucket-relative, prefix already stripped).
func (m *MinioClient) PresignedGetURL(ctx context.Context, key string, ttl time.Duration) (*url.URL, error) {
	if key == "" {
		return nil, fmt.Errorf("object key cannot be empty")
	}

	signed, err := m.Client.PresignedGetObject(ctx, m.Bucket, key, ttl, url.Values{})
	if err != nil {
		return nil, fmt.Errorf("failed to presign object %s: %w", key, err)
	}

	return signed, nil
}

// StatObject reports whether the key exists; the caller maps the minio
// error code when it doesn't.
func (m *MinioClient) StatObject(ctx context.Context, key string) (minio.ObjectInfo, error) {
	return m.Client.StatObject(ctx, m.Bucket, key, minio.StatObjectOptions{})
}

// PutObject uploads one blob under the given key.
func (m *MinioClient) PutObject(ctx context.Context, key string, data []byte, contentType string) error {
	if key == "" {
		return fmt.Errorf("object key cannot be empty")
	}

	_, err := m.Client.PutObject(ctx, m.Bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %s: %w", key, err)
	}

	return nil
}

// RemoveObject deletes one object from the media bucket.
func (m *MinioClient) RemoveObject(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("object key cannot be empty")
	}

	err := m.Client.RemoveObject(ctx, m.Bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove object %s: %w", key, err)
	}

	return nil
}

// DataUsage returns the cluster data usage report for the admin dashboard.
func (m *MinioClient) DataUsage(ctx context.Context) (madmin.DataUsageInfo, error) {
	usage, err := m.Admin.DataUsageInfo(ctx)
	if err != nil {
		return madmin.DataUsageInfo{}, fmt.Errorf("failed to get data usage info: %w", err)
	}

	return usage, nil
}
