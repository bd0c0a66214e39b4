package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/nadeuri-dev/nadeuri/shared/logger"
	"github.com/nadeuri-dev/nadeuri/shared/utils"
)

const readyTimeout = 2 * time.Second

type healthStatus struct {
	Status string `json:"status"`
}

// Health is the liveness probe, it only proves the process serves HTTP.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, healthStatus{Status: "ok"})
}

// Ready is the readiness probe. It answers 503 while the database is unreachable.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		logger.Log.Warn("readiness check failed", "error", err)
		utils.WriteJSON(w, http.StatusServiceUnavailable, healthStatus{Status: "database unavailable"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, healthStatus{Status: "ok"})
}
