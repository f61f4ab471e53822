package restaurants

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/myezz/restaurant-api/pkg/db/models"
	pkgerrors "github.com/myezz/restaurant-api/pkg/errors"
)

// 2 digit state code, 10 char PAN, entity digit, Z, checksum.
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z0-9]{13}$`)

const maxNameLen = 120

// Service exposes the restaurant profile.
type Service interface {
	Get(ctx context.Context, id uuid.UUID) (*RestaurantDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*RestaurantDTO, error)
	SetOnline(ctx context.Context, id uuid.UUID, online bool) (*RestaurantDTO, error)
}

type service struct {
	repo Repository
}

// NewService builds a restaurant service over the given repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("restaurant repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*RestaurantDTO, error) {
	restaurant, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(restaurant), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*RestaurantDTO, error) {
	restaurant, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
		}
		if len(name) > maxNameLen {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is too long")
		}
		restaurant.Name = name
	}
	if input.BusinessName != nil {
		restaurant.BusinessName = strings.TrimSpace(*input.BusinessName)
	}
	if input.GSTIN != nil {
		gstin, err := NormalizeGSTIN(*input.GSTIN)
		if err != nil {
			return nil, err
		}
		restaurant.GSTIN = gstin
	}

	return s.save(ctx, restaurant)
}

func (s *service) SetOnline(ctx context.Context, id uuid.UUID, online bool) (*RestaurantDTO, error) {
	restaurant, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if restaurant.IsOnline == online {
		return FromModel(restaurant), nil
	}
	restaurant.IsOnline = online
	return s.save(ctx, restaurant)
}

// NormalizeGSTIN uppercases and validates a GSTIN. An empty value clears it.
func NormalizeGSTIN(value string) (string, error) {
	gstin := strings.ToUpper(strings.TrimSpace(value))
	if gstin == "" {
		return "", nil
	}
	if !gstinPattern.MatchString(gstin) {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "invalid GSTIN").
			WithDetails(map[string]any{"gstin": "must be 15 uppercase letters or digits starting with a state code"})
	}
	return gstin, nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.Restaurant, error) {
	restaurant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "restaurant not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to load restaurant")
	}
	return restaurant, nil
}

func (s *service) save(ctx context.Context, restaurant *models.Restaurant) (*RestaurantDTO, error) {
	if err := s.repo.Update(ctx, restaurant); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "restaurant not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to update restaurant")
	}
	return FromModel(restaurant), nil
}
