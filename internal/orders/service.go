package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/myezz/restaurant-api/pkg/db"
	"github.com/myezz/restaurant-api/pkg/db/models"
	"github.com/myezz/restaurant-api/pkg/enums"
	pkgerrors "github.com/myezz/restaurant-api/pkg/errors"
	"github.com/myezz/restaurant-api/pkg/pagination"
	"github.com/myezz/restaurant-api/pkg/security"
	"github.com/myezz/restaurant-api/pkg/types"
)

const (
	MinPrepTime = 1
	MaxPrepTime = 180

	verificationCodeLength = 4
	orderCodeSuffixLength  = 6
	maxRejectionReasonLen  = 280
)

// Service drives the kitchen board: order intake and status transitions.
// Every method that takes a ref accepts either the order UUID or its order code.
type Service interface {
	Create(ctx context.Context, restaurantID uuid.UUID, input CreateOrderInput) (*OrderDTO, error)
	List(ctx context.Context, restaurantID uuid.UUID, filters ListFilters, params pagination.Params) (*OrderList, error)
	Get(ctx context.Context, restaurantID uuid.UUID, ref string) (*OrderDTO, error)
	Accept(ctx context.Context, restaurantID uuid.UUID, ref string, prepTime int) (*OrderDTO, error)
	Reject(ctx context.Context, restaurantID uuid.UUID, ref string, reason string) (*OrderDTO, error)
	MarkReady(ctx context.Context, restaurantID uuid.UUID, ref string) (*OrderDTO, error)
	HandOver(ctx context.Context, restaurantID uuid.UUID, ref string, verificationCode string) (*OrderDTO, error)
	Deliver(ctx context.Context, restaurantID uuid.UUID, ref string) (*OrderDTO, error)
	Cancel(ctx context.Context, restaurantID uuid.UUID, ref string) (*OrderDTO, error)
	Delete(ctx context.Context, restaurantID uuid.UUID, ref string) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService builds the order service. A nil clock falls back to time.Now.
func NewService(repo Repository, clock func() time.Time) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if clock == nil {
		clock = time.Now
	}
	return &service{repo: repo, now: clock}, nil
}

func (s *service) Create(ctx context.Context, restaurantID uuid.UUID, input CreateOrderInput) (*OrderDTO, error) {
	customer := strings.TrimSpace(input.CustomerName)
	if customer == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer name is required")
	}
	items := make(types.OrderItems, 0, len(input.Items))
	for _, item := range input.Items {
		if item.DisplayName() == "" {
			continue
		}
		item.Name = item.DisplayName()
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one item is required")
	}
	if input.Total < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "total must not be negative")
	}

	status := enums.OrderStatusNew
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status").
				WithDetails(map[string]any{"status": input.Status.String()})
		}
		status = *input.Status
	}

	code := strings.ToUpper(strings.TrimSpace(input.OrderCode))
	if code == "" {
		suffix, err := security.GenerateVerificationCode(orderCodeSuffixLength)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate order code")
		}
		code = "ORD-" + suffix
	}

	verification := strings.ToUpper(strings.TrimSpace(input.VerificationCode))
	if verification == "" {
		generated, err := security.GenerateVerificationCode(verificationCodeLength)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate verification code")
		}
		verification = generated
	}

	now := s.now()
	order := &models.Order{
		ID:               uuid.New(),
		RestaurantID:     restaurantID,
		OrderCode:        code,
		CustomerName:     customer,
		Items:            items,
		Total:            types.MoneyFromFloat(input.Total),
		Status:           status,
		VerificationCode: verification,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if status.IsAccepted() {
		order.AcceptedAt = &now
	}

	if err := s.repo.Create(ctx, order); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "order code already exists").
				WithDetails(map[string]any{"order_id": code})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to create order")
	}
	return FromModel(order), nil
}

func (s *service) List(ctx context.Context, restaurantID uuid.UUID, filters ListFilters, params pagination.Params) (*OrderList, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	if filters.Status != nil && !filters.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status")
	}

	rows, err := s.repo.List(ctx, restaurantID, filters, cursor, pagination.LimitWithBuffer(params.Limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to fetch orders")
	}

	page, hasMore := pagination.Trim(rows, params.Limit)
	list := &OrderList{Orders: make([]OrderDTO, 0, len(page))}
	for i := range page {
		list.Orders = append(list.Orders, *FromModel(&page[i]))
	}
	if hasMore && len(page) > 0 {
		last := page[len(page)-1]
		list.NextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return list, nil
}

func (s *service) Get(ctx context.Context, restaurantID uuid.UUID, ref string) (*OrderDTO, error) {
	order, err := s.load(ctx, restaurantID, ref)
	if err != nil {
		return nil, err
	}
	return FromModel(order), nil
}

func (s *service) Accept(ctx context.Context, restaurantID uuid.UUID, ref string, prepTime int) (*OrderDTO, error) {
	if prepTime < MinPrepTime || prepTime > MaxPrepTime {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "prep time out of range").
			WithDetails(map[string]any{"prep_time": prepTime, "min": MinPrepTime, "max": MaxPrepTime})
	}
	return s.transition(ctx, restaurantID, ref, enums.OrderStatusPreparing, func(order *models.Order) error {
		now := s.now()
		order.AcceptedAt = &now
		order.PrepTime = &prepTime
		return nil
	})
}

func (s *service) Reject(ctx context.Context, restaurantID uuid.UUID, ref string, reason string) (*OrderDTO, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rejection reason is required")
	}
	if len(reason) > maxRejectionReasonLen {
		reason = reason[:maxRejectionReasonLen]
	}
	return s.transition(ctx, restaurantID, ref, enums.OrderStatusRejected, func(order *models.Order) error {
		order.RejectionReason = &reason
		return nil
	})
}

func (s *service) MarkReady(ctx context.Context, restaurantID uuid.UUID, ref string) (*OrderDTO, error) {
	return s.transition(ctx, restaurantID, ref, enums.OrderStatusReady, nil)
}

func (s *service) HandOver(ctx context.Context, restaurantID uuid.UUID, ref string, verificationCode string) (*OrderDTO, error) {
	return s.transition(ctx, restaurantID, ref, enums.OrderStatusCompleted, func(order *models.Order) error {
		if !security.MatchVerificationCode(order.VerificationCode, verificationCode) {
			return pkgerrors.New(pkgerrors.CodeValidation, "verification code does not match")
		}
		return nil
	})
}

func (s *service) Deliver(ctx context.Context, restaurantID uuid.UUID, ref string) (*OrderDTO, error) {
	return s.transition(ctx, restaurantID, ref, enums.OrderStatusDelivered, nil)
}

func (s *service) Cancel(ctx context.Context, restaurantID uuid.UUID, ref string) (*OrderDTO, error) {
	return s.transition(ctx, restaurantID, ref, enums.OrderStatusCancelled, nil)
}

func (s *service) Delete(ctx context.Context, restaurantID uuid.UUID, ref string) error {
	order, err := s.load(ctx, restaurantID, ref)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, restaurantID, order.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to delete order")
	}
	return nil
}

// transition moves an order to next. Re-applying the current status returns
// the order untouched; apply runs only for real transitions.
func (s *service) transition(ctx context.Context, restaurantID uuid.UUID, ref string, next enums.OrderStatus, apply func(*models.Order) error) (*OrderDTO, error) {
	order, err := s.load(ctx, restaurantID, ref)
	if err != nil {
		return nil, err
	}
	if order.Status == next {
		return FromModel(order), nil
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "order status transition not allowed").
			WithDetails(map[string]any{"from": order.Status.String(), "to": next.String()})
	}
	if apply != nil {
		if err := apply(order); err != nil {
			return nil, err
		}
	}
	order.Status = next
	order.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, order); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to update order")
	}
	return FromModel(order), nil
}

func (s *service) load(ctx context.Context, restaurantID uuid.UUID, ref string) (*models.Order, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}

	var (
		order *models.Order
		err   error
	)
	if id, parseErr := uuid.Parse(ref); parseErr == nil {
		order, err = s.repo.FindByID(ctx, restaurantID, id)
	} else {
		order, err = s.repo.FindByCode(ctx, restaurantID, strings.ToUpper(ref))
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to load order")
	}
	return order, nil
}
