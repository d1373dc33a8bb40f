package http

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"intake-backend/internal/handler/http/respond"
)

// healthCheckTimeout bounds the store ping performed by the health check.
const healthCheckTimeout = 3 * time.Second

// HealthResponse represents the JSON response for the health endpoint.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthHandler reports overall process health including document store
// connectivity.
type HealthHandler struct {
	Client  *mongo.Client
	Version string
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	checks := map[string]CheckStatus{}
	status := "healthy"
	code := http.StatusOK

	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		checks["database"] = CheckStatus{Status: "unhealthy", Message: "document store unreachable"}
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	} else {
		checks["database"] = CheckStatus{Status: "healthy"}
	}

	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

// LiveHandler answers the root liveness probe with a plain-text string,
// the contract the public site's uptime checks rely on.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.Text(w, http.StatusOK, "Server is running")
}
