package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/blog-be/internal/http/respond"
)

// Pinger reports whether the storage collaborator is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler returns uptime and storage status.
type HealthHandler struct {
	startedAt time.Time
	store     Pinger
}

// NewHealthHandler creates a health endpoint handler.
func NewHealthHandler(startedAt time.Time, store Pinger) *HealthHandler {
	return &HealthHandler{startedAt: startedAt, store: store}
}

// Register wires the handler into the router.
func (h *HealthHandler) Register(r chi.Router) {
	r.Get("/health", h.handle)
}

func (h *HealthHandler) handle(w http.ResponseWriter, r *http.Request) {
	status, code, database := "healthy", http.StatusOK, "connected"
	if err := h.store.Ping(r.Context()); err != nil {
		status, code, database = "unhealthy", http.StatusServiceUnavailable, "unreachable"
	}
	respond.JSON(w, code, status, map[string]string{
		"status":    status,
		"database":  database,
		"uptime":    time.Since(h.startedAt).Truncate(time.Second).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
