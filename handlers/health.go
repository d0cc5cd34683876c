package handlers

import (
	"net/http"

	"github.com/ffliq/ffliq-backend/db"
)

const Version = "0.1.0"

type HealthHandler struct {
	pool db.Conner
}

func NewHealthHandler(pool db.Conner) *HealthHandler {
	return &HealthHandler{pool: pool}
}

// Health never touches the database.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, map[string]string{"status": "ok", "version": Version})
}

// DBTest runs a trivial query and reports the outcome.
func (h *HealthHandler) DBTest(w http.ResponseWriter, r *http.Request) {
	if err := db.Ping(r.Context(), h.pool); err != nil {
		respond(w, r, http.StatusServiceUnavailable, map[string]string{"status": "error", "message": err.Error()})
		return
	}
	respond(w, r, http.StatusOK, map[string]string{"status": "ok", "message": "Database connection successful"})
}
