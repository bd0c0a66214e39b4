package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/nadeuri-dev/nadeuri/backend/internal/storage/assets"
	"github.com/nadeuri-dev/nadeuri/shared/config"
	"github.com/nadeuri-dev/nadeuri/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockClient struct {
	BucketExistsFunc func(ctx context.Context, bucket string) (bool, error)
	MakeBucketFunc   func(ctx context.Context, bucket string, opts minio.MakeBucketOptions) error
	StatObjectFunc   func(ctx context.Context, bucket, object string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	PutObjectFunc    func(ctx context.Context, bucket, object string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObjectFunc func(ctx context.Context, bucket, object string, opts minio.RemoveObjectOptions) error
}

func (m *MockClient) BucketExists(ctx context.Context, bucket string) (bool, error) {
	if m.BucketExistsFunc != nil {
		return m.BucketExistsFunc(ctx, bucket)
	}
	return true, nil
}

func (m *MockClient) MakeBucket(ctx context.Context, bucket string, opts minio.MakeBucketOptions) error {
	if m.MakeBucketFunc != nil {
		return m.MakeBucketFunc(ctx, bucket, opts)
	}
	return nil
}

func (m *MockClient) StatObject(ctx context.Context, bucket, object string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	if m.StatObjectFunc != nil {
		return m.StatObjectFunc(ctx, bucket, object, opts)
	}
	return minio.ObjectInfo{Key: object}, nil
}

func (m *MockClient) PutObject(ctx context.Context, bucket, object string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if m.PutObjectFunc != nil {
		return m.PutObjectFunc(ctx, bucket, object, reader, size, opts)
	}
	return minio.UploadInfo{Bucket: bucket, Key: object, Size: size}, nil
}

func (m *MockClient) RemoveObject(ctx context.Context, bucket, object string, opts minio.RemoveObjectOptions) error {
	if m.RemoveObjectFunc != nil {
		return m.RemoveObjectFunc(ctx, bucket, object, opts)
	}
	return nil
}

var testCfg = config.S3{Bucket: "images", PublicBaseURL: "https://cdn.example.com/images/"}

func TestNewWithClient(t *testing.T) {
	ctx := context.Background()

	t.Run("existing bucket", func(t *testing.T) {
		made := false
		client := &MockClient{MakeBucketFunc: func(context.Context, string, minio.MakeBucketOptions) error {
			made = true
			return nil
		}}

		s, err := newWithClient(ctx, client, testCfg)
		require.NoError(t, err)
		assert.False(t, made)
		assert.Equal(t, "https://cdn.example.com/images", s.publicBaseURL)
	})

	t.Run("creates missing bucket", func(t *testing.T) {
		var madeBucket string
		client := &MockClient{
			BucketExistsFunc: func(context.Context, string) (bool, error) { return false, nil },
			MakeBucketFunc: func(_ context.Context, bucket string, _ minio.MakeBucketOptions) error {
				madeBucket = bucket
				return nil
			},
		}

		_, err := newWithClient(ctx, client, testCfg)
		require.NoError(t, err)
		assert.Equal(t, "images", madeBucket)
	})

	t.Run("uploads missing default image", func(t *testing.T) {
		var (
			gotObject string
			gotType   string
			gotBody   []byte
		)
		client := &MockClient{
			StatObjectFunc: func(context.Context, string, string, minio.StatObjectOptions) (minio.ObjectInfo, error) {
				return minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: http.StatusNotFound}
			},
			PutObjectFunc: func(_ context.Context, _, object string, reader io.Reader, _ int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
				gotObject, gotType = object, opts.ContentType
				gotBody, _ = io.ReadAll(reader)
				return minio.UploadInfo{}, nil
			},
		}

		s, err := newWithClient(ctx, client, testCfg)
		require.NoError(t, err)
		assert.Equal(t, assets.DefaultImageName, gotObject)
		assert.Equal(t, "image/png", gotType)
		assert.Equal(t, assets.DefaultImage, gotBody)
		assert.Equal(t, "https://cdn.example.com/images/defaultImage.png", s.DefaultImageUrl())
	})

	t.Run("keeps existing default image", func(t *testing.T) {
		put := false
		client := &MockClient{PutObjectFunc: func(context.Context, string, string, io.Reader, int64, minio.PutObjectOptions) (minio.UploadInfo, error) {
			put = true
			return minio.UploadInfo{}, nil
		}}

		_, err := newWithClient(ctx, client, testCfg)
		require.NoError(t, err)
		assert.False(t, put)
	})

	t.Run("stat failure", func(t *testing.T) {
		client := &MockClient{StatObjectFunc: func(context.Context, string, string, minio.StatObjectOptions) (minio.ObjectInfo, error) {
			return minio.ObjectInfo{}, minio.ErrorResponse{Code: "AccessDenied", StatusCode: http.StatusForbidden}
		}}

		_, err := newWithClient(ctx, client, testCfg)
		assert.Error(t, err)
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		client := &MockClient{BucketExistsFunc: func(context.Context, string) (bool, error) {
			return false, errors.New("dial tcp: refused")
		}}

		_, err := newWithClient(ctx, client, testCfg)
		assert.Error(t, err)
	})
}

func TestUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("puts object and returns public url", func(t *testing.T) {
		var (
			gotObject string
			gotSize   int64
			gotType   string
			gotBody   []byte
		)
		client := &MockClient{PutObjectFunc: func(_ context.Context, _, object string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
			gotObject, gotSize, gotType = object, size, opts.ContentType
			gotBody, _ = io.ReadAll(reader)
			return minio.UploadInfo{}, nil
		}}
		s, err := newWithClient(ctx, client, testCfg)
		require.NoError(t, err)

		file := &domain.PendingFile{Filename: "cat.JPG", SizeBytes: 3, ContentType: "image/jpeg", Data: bytes.NewReader([]byte("cat"))}
		url, err := s.Upload(ctx, file)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(gotObject, objectPrefix))
		assert.True(t, strings.HasSuffix(gotObject, ".jpg"))
		assert.Equal(t, "https://cdn.example.com/images/"+gotObject, url)
		assert.Equal(t, int64(3), gotSize)
		assert.Equal(t, "image/jpeg", gotType)
		assert.Equal(t, []byte("cat"), gotBody)
	})

	t.Run("put failure", func(t *testing.T) {
		client := &MockClient{PutObjectFunc: func(context.Context, string, string, io.Reader, int64, minio.PutObjectOptions) (minio.UploadInfo, error) {
			return minio.UploadInfo{}, errors.New("access denied")
		}}
		s, err := newWithClient(ctx, client, testCfg)
		require.NoError(t, err)

		_, err = s.Upload(ctx, &domain.PendingFile{Filename: "a.png", SizeBytes: 1, Data: bytes.NewReader([]byte("a"))})
		assert.Error(t, err)
	})

	t.Run("empty file", func(t *testing.T) {
		s, err := newWithClient(ctx, &MockClient{}, testCfg)
		require.NoError(t, err)

		_, err = s.Upload(ctx, &domain.PendingFile{Filename: "a.png"})
		assert.Error(t, err)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	var removed []string
	client := &MockClient{RemoveObjectFunc: func(_ context.Context, _, object string, _ minio.RemoveObjectOptions) error {
		removed = append(removed, object)
		return nil
	}}
	s, err := newWithClient(ctx, client, testCfg)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "https://cdn.example.com/images/boards/abc.png"))
	require.NoError(t, s.Delete(ctx, "/uploads/defaultImage.png"))
	require.NoError(t, s.Delete(ctx, s.DefaultImageUrl()))
	require.NoError(t, s.Delete(ctx, "https://cdn.example.com/images/other/abc.png"))

	assert.Equal(t, []string{"boards/abc.png"}, removed)
}
