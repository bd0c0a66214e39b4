package setup

import (
	"context"
	"fmt"

	"github.com/nadeuri-dev/nadeuri/backend/internal/handler"
	"github.com/nadeuri-dev/nadeuri/backend/internal/service"
	"github.com/nadeuri-dev/nadeuri/backend/internal/storage/fs"
	"github.com/nadeuri-dev/nadeuri/backend/internal/storage/pg"
	"github.com/nadeuri-dev/nadeuri/backend/internal/storage/s3"
	"github.com/nadeuri-dev/nadeuri/shared/config"
	"github.com/nadeuri-dev/nadeuri/shared/logger"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config  *config.Config
	Storage *pg.Storage
	Handler *handler.Handler
	// MediaRoot is the local image directory, empty unless the local driver is used.
	MediaRoot string
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	images, mediaRoot, err := newImageStorage(ctx, cfg)
	if err != nil {
		storage.Cleanup()
		return nil, err
	}

	board := service.NewBoard(storage, storage, images, service.BoardConfig{
		DefaultPageSize: cfg.Public.Board.DefaultPageSize,
		MaxPageSize:     cfg.Public.Board.MaxPageSize,
	})

	h := handler.New(board, cfg, storage)

	return &Dependencies{
		Config:    cfg,
		Storage:   storage,
		Handler:   h,
		MediaRoot: mediaRoot,
	}, nil
}

func newImageStorage(ctx context.Context, cfg *config.Config) (service.ImageStorage, string, error) {
	media := cfg.Public.Media
	switch media.Driver {
	case config.MediaDriverLocal:
		images, err := fs.New(media.LocalRoot, media.UploadPath)
		if err != nil {
			return nil, "", err
		}
		logger.Log.Info("using local image storage", "root", images.RootPath())
		return images, images.RootPath(), nil
	case config.MediaDriverS3:
		images, err := s3.New(ctx, media.S3, cfg.Private.S3)
		if err != nil {
			return nil, "", err
		}
		logger.Log.Info("using s3 image storage", "endpoint", media.S3.Endpoint, "bucket", media.S3.Bucket)
		return images, "", nil
	default:
		return nil, "", fmt.Errorf("unknown media driver %q", media.Driver)
	}
}
