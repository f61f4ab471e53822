package reports

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/myezz/restaurant-api/api/controllers/tenantcontext"
	"github.com/myezz/restaurant-api/api/responses"
	internalreports "github.com/myezz/restaurant-api/internal/reports"
	pkgerrors "github.com/myezz/restaurant-api/pkg/errors"
	"github.com/myezz/restaurant-api/pkg/logger"
)

const rangeParam = "range"

type fetchFunc func(ctx context.Context, restaurantID uuid.UUID, rangeName string) (any, error)

// Sales serves GET /api/reports/sales.
func Sales(svc internalreports.Service, logg *logger.Logger) http.HandlerFunc {
	return report(svc, logg, func(ctx context.Context, id uuid.UUID, rng string) (any, error) {
		return svc.Sales(ctx, id, rng)
	})
}

// Orders serves GET /api/reports/orders.
func Orders(svc internalreports.Service, logg *logger.Logger) http.HandlerFunc {
	return report(svc, logg, func(ctx context.Context, id uuid.UUID, rng string) (any, error) {
		return svc.Orders(ctx, id, rng)
	})
}

// Menu serves GET /api/reports/menu.
func Menu(svc internalreports.Service, logg *logger.Logger) http.HandlerFunc {
	return report(svc, logg, func(ctx context.Context, id uuid.UUID, rng string) (any, error) {
		return svc.Menu(ctx, id, rng)
	})
}

// Heatmap serves GET /api/reports/heatmap.
func Heatmap(svc internalreports.Service, logg *logger.Logger) http.HandlerFunc {
	return report(svc, logg, func(ctx context.Context, id uuid.UUID, rng string) (any, error) {
		return svc.Heatmap(ctx, id, rng)
	})
}

// Customers serves GET /api/reports/customers.
func Customers(svc internalreports.Service, logg *logger.Logger) http.HandlerFunc {
	return report(svc, logg, func(ctx context.Context, id uuid.UUID, rng string) (any, error) {
		return svc.Customers(ctx, id, rng)
	})
}

// Today serves GET /api/metrics/today. It ignores any range parameter.
func Today(svc internalreports.Service, logg *logger.Logger) http.HandlerFunc {
	return report(svc, logg, func(ctx context.Context, id uuid.UUID, _ string) (any, error) {
		return svc.Today(ctx, id)
	})
}

func report(svc internalreports.Service, logg *logger.Logger, fetch fetchFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reports service unavailable"))
			return
		}

		restaurantID, err := tenantcontext.ResolveRestaurantID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		rangeName := strings.TrimSpace(r.URL.Query().Get(rangeParam))
		result, err := fetch(ctx, restaurantID, rangeName)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
