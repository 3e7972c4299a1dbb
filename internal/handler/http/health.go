package http

import (
	"encoding/json"
	"net/http"

	"github.com/itops-tools/absence-backend-go/internal/pkg/database"
)

type HealthHandler interface {
	Check(w http.ResponseWriter, r *http.Request)
}

type HealthHandlerImpl struct {
	db *database.DB
}

func NewHealthHandler(db *database.DB) HealthHandler {
	return &HealthHandlerImpl{db: db}
}

// Check implements HealthHandler. Reports liveness plus database
// reachability; a failed ping answers 503 so load balancers drop the
// instance.
func (h *HealthHandlerImpl) Check(w http.ResponseWriter, r *http.Request) {
	payload := map[string]interface{}{
		"success":  true,
		"status":   "ok",
		"database": "ok",
	}
	status := http.StatusOK

	if err := h.db.Ping(r.Context()); err != nil {
		payload["success"] = false
		payload["status"] = "degraded"
		payload["database"] = "unreachable"
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
