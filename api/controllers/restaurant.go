package controllers

import (
	"net/http"

	"github.com/myezz/restaurant-api/api/controllers/tenantcontext"
	"github.com/myezz/restaurant-api/api/responses"
	"github.com/myezz/restaurant-api/api/validators"
	"github.com/myezz/restaurant-api/internal/restaurants"
	"github.com/myezz/restaurant-api/pkg/logger"
)

type profileRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,max=120"`
	BusinessName *string `json:"businessName,omitempty" validate:"omitempty,max=160"`
	GSTIN        *string `json:"gstin,omitempty" validate:"omitempty,max=15"`
}

type onlineRequest struct {
	IsOnline *bool `json:"isOnline" validate:"required"`
}

func RestaurantProfile(svc restaurants.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		restaurantID, err := tenantcontext.ResolveRestaurantID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		profile, err := svc.Get(ctx, restaurantID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, profile)
	}
}

// RestaurantUpdate edits the profile. An empty gstin clears it.
func RestaurantUpdate(svc restaurants.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		restaurantID, err := tenantcontext.ResolveRestaurantID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req profileRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		profile, err := svc.Update(ctx, restaurantID, restaurants.UpdateProfileInput{
			Name:         req.Name,
			BusinessName: req.BusinessName,
			GSTIN:        req.GSTIN,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, profile)
	}
}

// RestaurantSetOnline toggles whether the kitchen accepts new orders.
func RestaurantSetOnline(svc restaurants.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		restaurantID, err := tenantcontext.ResolveRestaurantID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req onlineRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		profile, err := svc.SetOnline(ctx, restaurantID, *req.IsOnline)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if logg != nil {
			logg.Info(logg.WithField(ctx, "is_online", profile.IsOnline), "restaurant.status_changed")
		}
		responses.WriteSuccess(w, profile)
	}
}
