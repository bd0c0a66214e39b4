package fs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nadeuri-dev/nadeuri/backend/internal/service"
	"github.com/nadeuri-dev/nadeuri/backend/internal/storage/assets"
	"github.com/nadeuri-dev/nadeuri/shared/domain"
)

// Storage keeps images on local disk under rootPath. They are served back
// by the router's static file server under urlPrefix.
type Storage struct {
	rootPath  string
	urlPrefix string
}

// Ensure Storage struct implements the interface at compile time.
var _ service.ImageStorage = (*Storage)(nil)

const boardsDir = "boards"

// New prepares rootPath and writes the default image there unless a file of
// that name already exists, an operator supplied one is kept.
func New(rootPath, urlPrefix string) (*Storage, error) {
	// Use filepath.Clean to prevent path traversal issues like "media/../"
	p := filepath.Clean(rootPath)

	if err := os.MkdirAll(filepath.Join(p, boardsDir), 0755); err != nil {
		return nil, fmt.Errorf("failed to create root storage directory %s: %w", p, err)
	}
	if err := seedDefaultImage(filepath.Join(p, assets.DefaultImageName)); err != nil {
		return nil, err
	}

	return &Storage{rootPath: p, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}, nil
}

func seedDefaultImage(fullPath string) error {
	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return fmt.Errorf("failed to create default image: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(assets.DefaultImage); err != nil {
		os.Remove(fullPath) // Best effort, a partial file would be served as is.
		return fmt.Errorf("failed to write default image: %w", err)
	}
	return nil
}

func (s *Storage) RootPath() string {
	return s.rootPath
}

func (s *Storage) DefaultImageUrl() domain.ImageUrl {
	return s.urlPrefix + "/" + assets.DefaultImageName
}

// Upload writes the image under a generated name and returns its public URL.
func (s *Storage) Upload(ctx context.Context, file *domain.PendingFile) (domain.ImageUrl, error) {
	if file.Empty() {
		return "", fmt.Errorf("nothing to upload")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	relativePath := path.Join(boardsDir, uuid.NewString()+file.Extension())
	fullPath := filepath.Join(s.rootPath, filepath.FromSlash(relativePath))

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file.Data); err != nil {
		os.Remove(fullPath) // Best effort, ignore error here.
		return "", fmt.Errorf("failed to copy file data: %w", err)
	}

	return s.urlPrefix + "/" + relativePath, nil
}

// Delete removes an image previously returned by Upload. URLs that do not
// belong to this store, the default image among them, are ignored.
func (s *Storage) Delete(ctx context.Context, url domain.ImageUrl) error {
	relativePath, ok := strings.CutPrefix(url, s.urlPrefix+"/"+boardsDir+"/")
	if !ok || relativePath == "" || strings.ContainsAny(relativePath, `/\`) {
		return nil
	}
	err := os.Remove(filepath.Join(s.rootPath, boardsDir, relativePath))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
