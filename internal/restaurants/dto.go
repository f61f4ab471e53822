package restaurants

import (
	"time"

	"github.com/google/uuid"

	"github.com/myezz/restaurant-api/pkg/db/models"
)

// RestaurantDTO is the profile shape returned to the dashboard.
type RestaurantDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	BusinessName string    `json:"businessName"`
	GSTIN        string    `json:"gstin"`
	IsOnline     bool      `json:"isOnline"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UpdateProfileInput carries a partial profile update; nil fields are kept.
type UpdateProfileInput struct {
	Name         *string
	BusinessName *string
	GSTIN        *string
}

// FromModel maps the persisted restaurant into its DTO.
func FromModel(m *models.Restaurant) *RestaurantDTO {
	if m == nil {
		return nil
	}
	return &RestaurantDTO{
		ID:           m.ID,
		Name:         m.Name,
		BusinessName: m.BusinessName,
		GSTIN:        m.GSTIN,
		IsOnline:     m.IsOnline,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
