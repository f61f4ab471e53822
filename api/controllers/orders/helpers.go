package orders

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/myezz/restaurant-api/api/controllers/tenantcontext"
	"github.com/myezz/restaurant-api/api/responses"
	internalorders "github.com/myezz/restaurant-api/internal/orders"
	pkgerrors "github.com/myezz/restaurant-api/pkg/errors"
	"github.com/myezz/restaurant-api/pkg/logger"
)

type orderScope struct {
	restaurantID uuid.UUID
	ref          string
}

// withOrderRef resolves the tenant and the {orderId} path segment before
// calling next.
func withOrderRef(logg *logger.Logger, next func(http.ResponseWriter, *http.Request, orderScope)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		restaurantID, err := tenantcontext.ResolveRestaurantID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		ref := strings.TrimSpace(chi.URLParam(r, "orderId"))
		if ref == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "order id is required"))
			return
		}
		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithField(ctx, "order_ref", ref)
		}
		next(w, r.WithContext(ctx), orderScope{restaurantID: restaurantID, ref: ref})
	}
}

func writeOrder(w http.ResponseWriter, r *http.Request, logg *logger.Logger, order *internalorders.OrderDTO, err error) {
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return
	}
	if logg != nil {
		logg.Info(logg.WithField(r.Context(), "status", order.Status.String()), "order.transition")
	}
	responses.WriteSuccess(w, order)
}
