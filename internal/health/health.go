package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Checker represents dependencies that can be probed for readiness.
type Checker interface {
	PingStorage(ctx context.Context, timeout time.Duration) error
}

// Handler exposes HTTP handlers for health endpoints.
type Handler struct {
	Checker        Checker
	StorageTimeout time.Duration
}

// Live reports liveness status.
func (h Handler) Live(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready reports readiness based on the storage probe.
func (h Handler) Ready(w http.ResponseWriter, r *http.Request) {
	storageStatus := "ok"
	if h.Checker != nil {
		if err := h.Checker.PingStorage(r.Context(), h.storageTimeout()); err != nil {
			storageStatus = err.Error()
		}
	}
	status := map[string]string{"storage": storageStatus}
	w.Header().Set("Content-Type", "application/json")
	if storageStatus != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_ = json.NewEncoder(w).Encode(status)
}

func (h Handler) storageTimeout() time.Duration {
	if h.StorageTimeout <= 0 {
		return 300 * time.Millisecond
	}
	return h.StorageTimeout
}
