package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/myezz/restaurant-api/api/controllers/tenantcontext"
	"github.com/myezz/restaurant-api/api/responses"
	"github.com/myezz/restaurant-api/api/validators"
	"github.com/myezz/restaurant-api/internal/menu"
	pkgerrors "github.com/myezz/restaurant-api/pkg/errors"
	"github.com/myezz/restaurant-api/pkg/logger"
)

type menuItemRequest struct {
	Name     string   `json:"name" validate:"required,max=120"`
	Category string   `json:"category" validate:"required,max=60"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
	IsVeg    bool     `json:"isVeg"`
	InStock  *bool    `json:"inStock,omitempty"`
}

type menuItemPatch struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,max=120"`
	Category *string  `json:"category,omitempty" validate:"omitempty,max=60"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	IsVeg    *bool    `json:"isVeg,omitempty"`
	InStock  *bool    `json:"inStock,omitempty"`
}

type stockRequest struct {
	InStock *bool `json:"inStock" validate:"required"`
}

// MenuList serves GET /api/menu with optional category and stock filters.
func MenuList(svc menu.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		restaurantID, err := tenantcontext.ResolveRestaurantID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		rawStock := validators.QueryString(r, "stock", 20)
		stock, ok := menu.ParseStockFilter(rawStock)
		if !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid stock filter").
				WithDetails(map[string]any{"stock": rawStock, "allowed": []menu.StockFilter{menu.StockAll, menu.StockInStock, menu.StockOutOfStock}}))
			return
		}

		items, err := svc.List(ctx, restaurantID, menu.ListFilters{
			Category: validators.QueryString(r, "category", 60),
			Stock:    stock,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

func MenuCreate(svc menu.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		restaurantID, err := tenantcontext.ResolveRestaurantID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req menuItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item, err := svc.Create(ctx, restaurantID, menu.CreateItemInput{
			Name:     req.Name,
			Category: req.Category,
			Price:    *req.Price,
			IsVeg:    req.IsVeg,
			InStock:  req.InStock,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// MenuUpdate applies a partial update; omitted fields keep their value.
func MenuUpdate(svc menu.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		restaurantID, itemID, err := menuItemScope(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req menuItemPatch
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item, err := svc.Update(ctx, restaurantID, itemID, menu.UpdateItemInput{
			Name:     req.Name,
			Category: req.Category,
			Price:    req.Price,
			IsVeg:    req.IsVeg,
			InStock:  req.InStock,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

func MenuSetStock(svc menu.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		restaurantID, itemID, err := menuItemScope(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req stockRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item, err := svc.SetStock(ctx, restaurantID, itemID, *req.InStock)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

func MenuDelete(svc menu.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		restaurantID, itemID, err := menuItemScope(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if err := svc.Delete(ctx, restaurantID, itemID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"id": itemID.String(), "status": "deleted"})
	}
}

// Categories serves GET /api/categories in display order.
func Categories(svc menu.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		restaurantID, err := tenantcontext.ResolveRestaurantID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		categories, err := svc.Categories(ctx, restaurantID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, categories)
	}
}

func menuItemScope(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	restaurantID, err := tenantcontext.ResolveRestaurantID(r)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	raw := strings.TrimSpace(chi.URLParam(r, "itemId"))
	if raw == "" {
		return uuid.Nil, uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "item id is required")
	}
	itemID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid item id")
	}
	return restaurantID, itemID, nil
}
