package tenantcontext

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/myezz/restaurant-api/api/middleware"
	pkgerrors "github.com/myezz/restaurant-api/pkg/errors"
)

// ResolveRestaurantID returns the tenant attached by the Tenant middleware.
func ResolveRestaurantID(r *http.Request) (uuid.UUID, error) {
	id, ok := middleware.RestaurantIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "restaurant id is required")
	}
	return id, nil
}
