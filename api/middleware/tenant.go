package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/myezz/restaurant-api/api/responses"
	pkgerrors "github.com/myezz/restaurant-api/pkg/errors"
	"github.com/myezz/restaurant-api/pkg/logger"
)

const (
	tenantQueryParam     = "restaurantId"
	tenantHeader         = "X-Restaurant-Id"
	tenantFallbackHeader = "X-Tenant-Fallback"
)

// TenantPolicy controls how a request's restaurant id is resolved.
type TenantPolicy struct {
	DefaultID uuid.UUID
	// Strict rejects requests without a valid id instead of falling back.
	Strict bool
}

// Tenant resolves the restaurant id from the restaurantId query parameter,
// then the X-Restaurant-Id header. Without strict mode a missing or malformed
// id resolves to DefaultID; such requests are logged and flagged with the
// X-Tenant-Fallback response header because any caller can read the default
// tenant's data this way.
func Tenant(policy TenantPolicy, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw, source := strings.TrimSpace(r.URL.Query().Get(tenantQueryParam)), TenantFromQuery
			if raw == "" {
				raw, source = strings.TrimSpace(r.Header.Get(tenantHeader)), TenantFromHeader
			}

			id, err := uuid.Parse(raw)
			if raw == "" || err != nil {
				if policy.Strict || policy.DefaultID == uuid.Nil {
					details := map[string]any{"field": tenantQueryParam}
					if raw != "" {
						details["value"] = raw
					}
					responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "valid restaurant id is required").WithDetails(details))
					return
				}
				id, source = policy.DefaultID, TenantFromFallback
				w.Header().Set(tenantFallbackHeader, "true")
				if logg != nil {
					fields := map[string]any{"restaurant_id": id.String(), "path": r.URL.Path}
					if raw != "" {
						fields["rejected_value"] = raw
					}
					logg.Warn(logg.WithFields(ctx, fields), "tenant.fallback")
				}
			}

			ctx = WithRestaurantID(ctx, id, source)
			if logg != nil {
				ctx = logg.WithRestaurantID(ctx, id.String())
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
