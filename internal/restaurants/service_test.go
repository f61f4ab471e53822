package restaurants

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/myezz/restaurant-api/pkg/db/models"
	pkgerrors "github.com/myezz/restaurant-api/pkg/errors"
)

var testRestaurantID = uuid.MustParse("7d6c1f0e-4a55-4c2e-9b1e-3f1b2a9c8d01")

func baseRestaurant() models.Restaurant {
	return models.Restaurant{
		ID:           testRestaurantID,
		Name:         "MyEzz Demo Kitchen",
		BusinessName: "MyEzz Foods Pvt Ltd",
		GSTIN:        "27AAPFU0939F1ZV",
	}
}

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(NewMemoryRepository(baseRestaurant()))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func strPtr(v string) *string { return &v }

func TestNewServiceRequiresRepo(t *testing.T) {
	if _, err := NewService(nil); err == nil {
		t.Fatal("expected error without repository")
	}
}

func TestGet(t *testing.T) {
	svc := newTestService(t)

	dto, err := svc.Get(context.Background(), testRestaurantID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if dto.Name != "MyEzz Demo Kitchen" {
		t.Fatalf("unexpected name %q", dto.Name)
	}

	_, err = svc.Get(context.Background(), uuid.New())
	if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc := newTestService(t)

	dto, err := svc.Update(context.Background(), testRestaurantID, UpdateProfileInput{
		Name:  strPtr(" Spice Route "),
		GSTIN: strPtr("29abcde1234f1z5"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if dto.Name != "Spice Route" {
		t.Fatalf("expected trimmed name, got %q", dto.Name)
	}
	if dto.GSTIN != "29ABCDE1234F1Z5" {
		t.Fatalf("expected uppercased gstin, got %q", dto.GSTIN)
	}
	if dto.BusinessName != "MyEzz Foods Pvt Ltd" {
		t.Fatalf("business name should be untouched, got %q", dto.BusinessName)
	}
}

func TestUpdateRejectsInvalidInput(t *testing.T) {
	svc := newTestService(t)
	cases := map[string]UpdateProfileInput{
		"blank name":  {Name: strPtr("  ")},
		"short gstin": {GSTIN: strPtr("27AAPFU")},
		"bad state":   {GSTIN: strPtr("AAAAPFU0939F1ZV")},
		"symbols":     {GSTIN: strPtr("27AAPFU0939F1-V")},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), testRestaurantID, input)
			if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestSetOnline(t *testing.T) {
	svc := newTestService(t)

	dto, err := svc.SetOnline(context.Background(), testRestaurantID, true)
	if err != nil {
		t.Fatalf("set online: %v", err)
	}
	if !dto.IsOnline {
		t.Fatal("expected restaurant online")
	}

	reloaded, err := svc.Get(context.Background(), testRestaurantID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !reloaded.IsOnline {
		t.Fatal("expected online flag to persist")
	}
}

type brokenRepo struct{}

func (brokenRepo) FindByID(context.Context, uuid.UUID) (*models.Restaurant, error) {
	return nil, errors.New("dial tcp: connection refused")
}

func (brokenRepo) Update(context.Context, *models.Restaurant) error { return nil }

func TestStoreFailureIsDependencyError(t *testing.T) {
	svc, err := NewService(brokenRepo{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	_, err = svc.Get(context.Background(), testRestaurantID)
	if !pkgerrors.IsCode(err, pkgerrors.CodeDependency) {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
