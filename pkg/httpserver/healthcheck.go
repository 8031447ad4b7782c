package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/helo/pkg/logger"
)

// Check is a named readiness dependency, e.g. the database ping.
type Check struct {
	Name string
	Func func(context.Context) error
}

const healthCheckTimeout = 3 * time.Second

// HealthCheckHandler serves liveness and readiness probes.
//
// Without checks it answers 200 {"status":"alive"}. With checks each one runs
// under a short timeout; all passing gives 200 {"status":"ready"}, any failure
// gives 503 {"status":"not_ready"}. Per-check results are listed under "checks".
func HealthCheckHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{"status": "alive"}
		status := http.StatusOK

		if len(checks) > 0 {
			ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
			defer cancel()

			results := make(map[string]string, len(checks))
			body["status"] = "ready"
			for _, c := range checks {
				if err := c.Func(ctx); err != nil {
					log.ErrorContext(ctx, "readiness check failed",
						slog.String("check", c.Name),
						logger.Error(err),
					)
					results[c.Name] = "error"
					body["status"] = "not_ready"
					status = http.StatusServiceUnavailable
					continue
				}
				results[c.Name] = "ok"
			}
			body["checks"] = results
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
}
