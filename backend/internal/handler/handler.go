package handler

import (
	"context"

	"github.com/nadeuri-dev/nadeuri/backend/internal/service"
	"github.com/nadeuri-dev/nadeuri/shared/config"
)

// HealthChecker reports whether the handler's dependencies can serve requests.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	board  service.BoardService
	cfg    *config.Config
	health HealthChecker
}

func New(board service.BoardService, cfg *config.Config, health HealthChecker) *Handler {
	return &Handler{board: board, cfg: cfg, health: health}
}
