package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any dependency exposing Ping
// (events.EventBus and cache.RedisClient both qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks holds the dependencies checked by the health endpoint.
// A nil Redis means de-duplication is disabled and is reported as such.
type HealthChecks struct {
	EventBus HealthChecker
	Redis    HealthChecker
}

type healthResponse struct {
	Status   string `json:"status"`
	EventBus string `json:"event_bus"`
	Redis    string `json:"redis"`
}

const (
	statusOK          = "ok"
	statusUnreachable = "unreachable"
	statusDisabled    = "disabled"
)

// HealthHandler checks every configured checker and answers 503 when any fails.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{
			Status:   statusOK,
			EventBus: check(ctx, checks.EventBus),
			Redis:    check(ctx, checks.Redis),
		}
		if resp.EventBus == statusUnreachable || resp.Redis == statusUnreachable {
			resp.Status = "degraded"
		}

		status := http.StatusOK
		if resp.Status != statusOK {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}

func check(ctx context.Context, c HealthChecker) string {
	if c == nil {
		return statusDisabled
	}
	if err := c.Ping(ctx); err != nil {
		return statusUnreachable
	}
	return statusOK
}
