package orders

import (
	"net/http"
	"strings"

	"github.com/myezz/restaurant-api/api/controllers/tenantcontext"
	"github.com/myezz/restaurant-api/api/responses"
	"github.com/myezz/restaurant-api/api/validators"
	internalorders "github.com/myezz/restaurant-api/internal/orders"
	"github.com/myezz/restaurant-api/pkg/enums"
	pkgerrors "github.com/myezz/restaurant-api/pkg/errors"
	"github.com/myezz/restaurant-api/pkg/logger"
	"github.com/myezz/restaurant-api/pkg/pagination"
	"github.com/myezz/restaurant-api/pkg/types"
)

type createOrderRequest struct {
	OrderID          string            `json:"order_id" validate:"omitempty,max=32"`
	CustomerName     string            `json:"customer_name" validate:"required,max=120"`
	Items            []types.OrderItem `json:"items" validate:"required,min=1,dive"`
	Total            *float64          `json:"total" validate:"required,gte=0"`
	Status           string            `json:"status,omitempty"`
	VerificationCode string            `json:"verification_code,omitempty" validate:"omitempty,max=8"`
}

type acceptRequest struct {
	PrepTime int `json:"prep_time" validate:"required,min=1,max=180"`
}

type rejectRequest struct {
	Reason string `json:"reason" validate:"required,max=280"`
}

type handoverRequest struct {
	VerificationCode string `json:"verification_code" validate:"required,max=8"`
}

// List returns the kitchen board, newest first, optionally filtered by status.
func List(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		restaurantID, err := tenantcontext.ResolveRestaurantID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var filters internalorders.ListFilters
		if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
			status, err := enums.ParseOrderStatus(raw)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter").
					WithDetails(map[string]any{"status": raw}))
				return
			}
			filters.Status = &status
		}

		params := pagination.Params{
			Limit:  limit,
			Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
		}
		list, err := svc.List(ctx, restaurantID, filters, params)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// Create accepts a new order onto the board.
func Create(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		restaurantID, err := tenantcontext.ResolveRestaurantID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req createOrderRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		input := internalorders.CreateOrderInput{
			OrderCode:        req.OrderID,
			CustomerName:     req.CustomerName,
			Items:            req.Items,
			Total:            *req.Total,
			VerificationCode: req.VerificationCode,
		}
		if raw := strings.TrimSpace(req.Status); raw != "" {
			status, err := enums.ParseOrderStatus(raw)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order status").
					WithDetails(map[string]any{"status": raw}))
				return
			}
			input.Status = &status
		}

		order, err := svc.Create(ctx, restaurantID, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

// Detail returns a single order by UUID or order code.
func Detail(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return withOrderRef(logg, func(w http.ResponseWriter, r *http.Request, scope orderScope) {
		order, err := svc.Get(r.Context(), scope.restaurantID, scope.ref)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	})
}

// Delete removes an order by UUID or order code.
func Delete(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return withOrderRef(logg, func(w http.ResponseWriter, r *http.Request, scope orderScope) {
		if err := svc.Delete(r.Context(), scope.restaurantID, scope.ref); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"order_id": scope.ref, "status": "deleted"})
	})
}

// Accept moves a new order into preparation with a prep time in minutes.
func Accept(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return withOrderRef(logg, func(w http.ResponseWriter, r *http.Request, scope orderScope) {
		var req acceptRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		order, err := svc.Accept(r.Context(), scope.restaurantID, scope.ref, req.PrepTime)
		writeOrder(w, r, logg, order, err)
	})
}

// Reject declines a new order with a reason shown to the customer.
func Reject(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return withOrderRef(logg, func(w http.ResponseWriter, r *http.Request, scope orderScope) {
		var req rejectRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		order, err := svc.Reject(r.Context(), scope.restaurantID, scope.ref, req.Reason)
		writeOrder(w, r, logg, order, err)
	})
}

func MarkReady(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return withOrderRef(logg, func(w http.ResponseWriter, r *http.Request, scope orderScope) {
		order, err := svc.MarkReady(r.Context(), scope.restaurantID, scope.ref)
		writeOrder(w, r, logg, order, err)
	})
}

// HandOver completes a ready order once the rider's verification code matches.
func HandOver(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return withOrderRef(logg, func(w http.ResponseWriter, r *http.Request, scope orderScope) {
		var req handoverRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		order, err := svc.HandOver(r.Context(), scope.restaurantID, scope.ref, req.VerificationCode)
		writeOrder(w, r, logg, order, err)
	})
}

func Deliver(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return withOrderRef(logg, func(w http.ResponseWriter, r *http.Request, scope orderScope) {
		order, err := svc.Deliver(r.Context(), scope.restaurantID, scope.ref)
		writeOrder(w, r, logg, order, err)
	})
}

func Cancel(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return withOrderRef(logg, func(w http.ResponseWriter, r *http.Request, scope orderScope) {
		order, err := svc.Cancel(r.Context(), scope.restaurantID, scope.ref)
		writeOrder(w, r, logg, order, err)
	})
}
