// Package s3 stores board images in an S3 compatible bucket (MinIO in
// development).
package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/nadeuri-dev/nadeuri/backend/internal/service"
	"github.com/nadeuri-dev/nadeuri/backend/internal/storage/assets"
	"github.com/nadeuri-dev/nadeuri/shared/config"
	"github.com/nadeuri-dev/nadeuri/shared/domain"
	"github.com/nadeuri-dev/nadeuri/shared/logger"
)

const objectPrefix = "boards/"

// objectClient is the part of *minio.Client the store relies on.
type objectClient interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
	MakeBucket(ctx context.Context, bucket string, opts minio.MakeBucketOptions) error
	StatObject(ctx context.Context, bucket, object string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	PutObject(ctx context.Context, bucket, object string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucket, object string, opts minio.RemoveObjectOptions) error
}

type Storage struct {
	cli           objectClient
	bucket        string
	publicBaseURL string
}

var _ service.ImageStorage = (*Storage)(nil)

// New connects to the bucket described by cfg, creating it and the default
// image object when missing.
func New(ctx context.Context, cfg config.S3, creds config.S3Credentials) (*Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(creds.AccessKey, creds.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio init: %w", err)
	}
	return newWithClient(ctx, client, cfg)
}

func newWithClient(ctx context.Context, client objectClient, cfg config.S3) (*Storage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		logger.Log.Info("creating bucket", "bucket", cfg.Bucket)
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
	}

	if err := seedDefaultImage(ctx, client, cfg.Bucket); err != nil {
		return nil, err
	}

	return &Storage{
		cli:           client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

func seedDefaultImage(ctx context.Context, client objectClient, bucket string) error {
	_, err := client.StatObject(ctx, bucket, assets.DefaultImageName, minio.StatObjectOptions{})
	if err == nil {
		return nil
	}
	if minio.ToErrorResponse(err).Code != "NoSuchKey" {
		return fmt.Errorf("stat default image: %w", err)
	}

	logger.Log.Info("uploading default image", "bucket", bucket, "object", assets.DefaultImageName)
	_, err = client.PutObject(ctx, bucket, assets.DefaultImageName, bytes.NewReader(assets.DefaultImage),
		int64(len(assets.DefaultImage)), minio.PutObjectOptions{ContentType: assets.DefaultImageContentType})
	if err != nil {
		return fmt.Errorf("put default image: %w", err)
	}
	return nil
}

func (s *Storage) DefaultImageUrl() domain.ImageUrl {
	return s.publicBaseURL + "/" + assets.DefaultImageName
}

// Upload puts the image into the bucket and returns its public URL.
func (s *Storage) Upload(ctx context.Context, file *domain.PendingFile) (domain.ImageUrl, error) {
	if file.Empty() {
		return "", fmt.Errorf("nothing to upload")
	}
	objectName := objectPrefix + uuid.NewString() + file.Extension()

	_, err := s.cli.PutObject(ctx, s.bucket, objectName, file.Data, file.SizeBytes,
		minio.PutObjectOptions{ContentType: file.ContentType})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", objectName, err)
	}
	return s.publicBaseURL + "/" + objectName, nil
}

// Delete removes an object previously returned by Upload. Other URLs are ignored.
func (s *Storage) Delete(ctx context.Context, url domain.ImageUrl) error {
	objectName, ok := strings.CutPrefix(url, s.publicBaseURL+"/")
	if !ok || !strings.HasPrefix(objectName, objectPrefix) {
		return nil
	}
	if err := s.cli.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %s: %w", objectName, err)
	}
	return nil
}
