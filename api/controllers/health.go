package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/myezz/restaurant-api/api/responses"
	"github.com/myezz/restaurant-api/internal/datasource"
	pkgerrors "github.com/myezz/restaurant-api/pkg/errors"
	"github.com/myezz/restaurant-api/pkg/logger"
)

const readinessTimeout = 2 * time.Second

// Pinger is any dependency the readiness probe can check.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthStatus struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Mode    datasource.Mode `json:"mode"`
	Reason  string          `json:"reason,omitempty"`
	Env     string          `json:"env,omitempty"`
}

// Health reports which datasource mode the process selected at startup.
func Health(source *datasource.Source, env string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := healthStatus{Status: "ok", Message: "restaurant api is running", Env: env}
		if source != nil {
			status.Mode = source.Mode
			status.Reason = source.Reason
		}
		responses.WriteSuccess(w, status)
	}
}

func HealthLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every named dependency. Nil pingers are skipped so an
// unconfigured redis does not fail readiness.
func HealthReady(deps map[string]Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		checks := make(map[string]string, len(deps))
		failed := false
		for name, dep := range deps {
			if dep == nil {
				checks[name] = "disabled"
				continue
			}
			if err := dep.Ping(ctx); err != nil {
				failed = true
				checks[name] = "unreachable"
				if logg != nil {
					logg.Error(logg.WithField(ctx, "dependency", name), "health.ready.failed", err)
				}
				continue
			}
			checks[name] = "ok"
		}

		if failed {
			responses.WriteError(r.Context(), nil, w, pkgerrors.New(pkgerrors.CodeUnavailable, "dependencies unavailable").WithDetails(checks))
			return
		}
		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
