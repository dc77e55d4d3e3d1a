package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"starseed-server/internal/shared/response"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Catalog   string `json:"catalog"`
	Database  string `json:"database"`
	Redis     string `json:"redis"`
}

// Pinger is satisfied by *sql.DB and the Redis client wrapper.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	catalog string
	db      Pinger
	redis   Pinger
}

// NewHealthHandler reports on the catalog backend. db and redis may be nil
// when the corresponding backend is not in use.
func NewHealthHandler(catalog string, db, redis Pinger) *HealthHandler {
	return &HealthHandler{catalog: catalog, db: db, redis: redis}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "health")

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Catalog:   h.catalog,
		Database:  ping(ctx, logger, "database", h.db),
		Redis:     ping(ctx, logger, "redis", h.redis),
	}

	status := http.StatusOK
	if resp.Database == "disconnected" {
		resp.Status = "degraded"
		status = http.StatusServiceUnavailable
	}

	response.Success(w, status, resp)
}

func ping(ctx context.Context, logger *slog.Logger, name string, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.PingContext(ctx); err != nil {
		logger.Warn("Dependency ping failed", "dependency", name, "error", err)
		return "disconnected"
	}
	return "connected"
}
