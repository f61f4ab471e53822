package restaurants

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/myezz/restaurant-api/pkg/db/models"
)

// MemoryRepository holds restaurant profiles for fixture mode.
type MemoryRepository struct {
	mu          sync.RWMutex
	restaurants map[uuid.UUID]models.Restaurant
	now         func() time.Time
}

// NewMemoryRepository seeds the store with the given restaurants.
func NewMemoryRepository(seed ...models.Restaurant) *MemoryRepository {
	repo := &MemoryRepository{restaurants: map[uuid.UUID]models.Restaurant{}, now: time.Now}
	for _, r := range seed {
		repo.restaurants[r.ID] = r
	}
	return repo
}

func (r *MemoryRepository) FindByID(_ context.Context, id uuid.UUID) (*models.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	restaurant, ok := r.restaurants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &restaurant, nil
}

func (r *MemoryRepository) Update(_ context.Context, restaurant *models.Restaurant) error {
	if restaurant == nil {
		return fmt.Errorf("restaurant is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.restaurants[restaurant.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	restaurant.UpdatedAt = r.now()
	r.restaurants[restaurant.ID] = *restaurant
	return nil
}
