package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/myezz/restaurant-api/pkg/db/models"
	"github.com/myezz/restaurant-api/pkg/enums"
	"github.com/myezz/restaurant-api/pkg/types"
)

// OrderDTO is the wire shape of an order on the kanban board.
type OrderDTO struct {
	ID               uuid.UUID         `json:"id"`
	OrderID          string            `json:"order_id"`
	RestaurantID     uuid.UUID         `json:"restaurant_id"`
	CustomerName     string            `json:"customer_name"`
	Items            []OrderItemDTO    `json:"items"`
	Total            float64           `json:"total"`
	Status           enums.OrderStatus `json:"status"`
	VerificationCode string            `json:"verification_code"`
	PrepTime         *int              `json:"prep_time,omitempty"`
	AcceptedAt       *time.Time        `json:"accepted_at,omitempty"`
	RejectionReason  *string           `json:"rejection_reason,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// OrderItemDTO is one line on an order card.
type OrderItemDTO struct {
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`
	Price    *float64 `json:"price,omitempty"`
}

// OrderList is one page of orders, newest first.
type OrderList struct {
	Orders     []OrderDTO `json:"orders"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

// ListFilters narrows an order listing.
type ListFilters struct {
	Status *enums.OrderStatus
}

// CreateOrderInput captures an order placed from outside the dashboard.
type CreateOrderInput struct {
	OrderCode        string
	CustomerName     string
	Items            []types.OrderItem
	Total            float64
	Status           *enums.OrderStatus
	VerificationCode string
}

// FromModel maps a persisted order into its DTO.
func FromModel(m *models.Order) *OrderDTO {
	if m == nil {
		return nil
	}
	dto := &OrderDTO{
		ID:               m.ID,
		OrderID:          m.OrderCode,
		RestaurantID:     m.RestaurantID,
		CustomerName:     m.CustomerName,
		Items:            make([]OrderItemDTO, 0, len(m.Items)),
		Total:            types.MoneyFloat(m.Total),
		Status:           m.Status,
		VerificationCode: m.VerificationCode,
		PrepTime:         m.PrepTime,
		AcceptedAt:       m.AcceptedAt,
		RejectionReason:  m.RejectionReason,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
	for _, item := range m.Items {
		dto.Items = append(dto.Items, OrderItemDTO{
			Name:     item.Name,
			Quantity: item.EffectiveQuantity(),
			Price:    item.Price,
		})
	}
	return dto
}
