package middleware

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	ctxRestaurantID contextKey = "restaurant_id"
	ctxTenantSource contextKey = "tenant_source"
)

// TenantSource records where the request's restaurant id came from.
type TenantSource string

const (
	TenantFromQuery    TenantSource = "query"
	TenantFromHeader   TenantSource = "header"
	TenantFromFallback TenantSource = "fallback"
)

// RestaurantIDFromContext returns the tenant resolved by the Tenant middleware.
func RestaurantIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	if ctx == nil {
		return uuid.Nil, false
	}
	id, ok := ctx.Value(ctxRestaurantID).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func TenantSourceFromContext(ctx context.Context) TenantSource {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxTenantSource).(TenantSource); ok {
		return v
	}
	return ""
}

// WithRestaurantID injects the tenant for downstream handlers.
func WithRestaurantID(ctx context.Context, id uuid.UUID, source TenantSource) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, ctxRestaurantID, id)
	return context.WithValue(ctx, ctxTenantSource, source)
}
