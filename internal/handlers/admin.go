package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// ResetDB drops and recreates all record tables. Development only; the
// route is left out when reset is disabled.
func (h *Handlers) ResetDB(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResetStorage(r.Context()); err != nil {
		h.respondServerError(w, r, err)
		return
	}
	respondText(w, "Database has been reset!")
}

type healthResponse struct {
	Status string `json:"status"`
}

// Health pings the database: 200 if OK, 503 if not.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	status, code := "ok", http.StatusOK
	if err := h.svc.Ping(ctx); err != nil {
		h.logger.WarnContext(ctx, "health check failed", "error", err)
		status, code = "down", http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(healthResponse{Status: status})
}
