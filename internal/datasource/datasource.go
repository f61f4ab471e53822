package datasource

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/myezz/restaurant-api/internal/menu"
	"github.com/myezz/restaurant-api/internal/orders"
	"github.com/myezz/restaurant-api/internal/restaurants"
	"github.com/myezz/restaurant-api/pkg/config"
	"github.com/myezz/restaurant-api/pkg/db"
	"github.com/myezz/restaurant-api/pkg/logger"
)

// Mode names which backing store serves the process.
type Mode string

const (
	ModeLive    Mode = "live"
	ModeFixture Mode = "fixture"
)

// ProbeTable is counted at startup to prove the schema is reachable.
const ProbeTable = "orders"

// Store is the database surface the selector needs.
type Store interface {
	DB() *gorm.DB
	Dialect() string
	Ping(ctx context.Context) error
	CountProbe(ctx context.Context, table string) (int64, error)
	Close() error
}

// Source bundles the repositories chosen once at startup. Business logic
// receives these repositories and never inspects Mode.
type Source struct {
	Mode        Mode
	Reason      string
	Orders      orders.Repository
	Menu        menu.Repository
	Restaurants restaurants.Repository
	Store       Store
}

// Options customises selection. Zero values use db.New, no migrations and
// the host clock.
type Options struct {
	Open        func(ctx context.Context) (Store, error)
	Migrate     func(ctx context.Context, store Store) error
	Clock       func() time.Time
	FixtureSeed uint64
}

// Select picks the live store when credentials are configured and the probe
// table answers, and falls back to in-memory fixtures otherwise. Fallback is
// never an error; only an invalid tenant id is.
func Select(ctx context.Context, cfg *config.Config, logg *logger.Logger, opts Options) (*Source, error) {
	tenantID, err := uuid.Parse(cfg.Tenant.DefaultID)
	if err != nil && !cfg.Tenant.Strict {
		return nil, fmt.Errorf("parsing default tenant id: %w", err)
	}

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	fallback := func(reason string, cause error) *Source {
		fields := map[string]any{"mode": ModeFixture, "reason": reason}
		if cause != nil {
			fields["error"] = cause.Error()
		}
		logg.Warn(logg.WithFields(ctx, fields), "datasource.fallback")
		return Fixtures(tenantID, clock(), opts.FixtureSeed, reason)
	}

	switch {
	case cfg.FeatureFlags.UseFixtures:
		return fallback("fixtures forced by configuration", nil), nil
	case !cfg.DB.Configured() && !cfg.FeatureFlags.UseSQLite:
		return fallback("no database credentials", nil), nil
	}

	open := opts.Open
	if open == nil {
		open = func(ctx context.Context) (Store, error) {
			return db.New(ctx, cfg.DB, cfg.FeatureFlags, logg)
		}
	}

	store, err := open(ctx)
	if err != nil {
		return fallback("database connection failed", err), nil
	}

	if opts.Migrate != nil {
		if err := opts.Migrate(ctx, store); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("running migrations: %w", err)
		}
	}

	if err := probe(ctx, store, cfg.DB.ProbeTimeout); err != nil {
		_ = store.Close()
		return fallback("database probe failed", err), nil
	}

	logg.Info(logg.WithFields(ctx, map[string]any{"mode": ModeLive, "dialect": store.Dialect()}), "datasource.selected")
	return Live(store), nil
}

// Live wires the gorm repositories over an open store.
func Live(store Store) *Source {
	conn := store.DB()
	return &Source{
		Mode:        ModeLive,
		Reason:      "connected",
		Orders:      orders.NewRepository(conn),
		Menu:        menu.NewRepository(conn),
		Restaurants: restaurants.NewRepository(conn),
		Store:       store,
	}
}

// Fixtures wires in-memory repositories seeded with generated demo data.
func Fixtures(restaurantID uuid.UUID, now time.Time, seed uint64, reason string) *Source {
	set := GenerateFixtures(restaurantID, now, seed)
	return &Source{
		Mode:        ModeFixture,
		Reason:      reason,
		Orders:      orders.NewMemoryRepository(set.Orders),
		Menu:        menu.NewMemoryRepository(set.Menu),
		Restaurants: restaurants.NewMemoryRepository(set.Restaurant),
	}
}

func probe(ctx context.Context, store Store, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	_, err := store.CountProbe(ctx, ProbeTable)
	return err
}

// Ping checks the live store; fixture mode is always reachable.
func (s *Source) Ping(ctx context.Context) error {
	if s == nil {
		return errors.New("datasource not initialized")
	}
	if s.Store == nil {
		return nil
	}
	return s.Store.Ping(ctx)
}

// Close releases the live store connection, if any.
func (s *Source) Close() error {
	if s == nil || s.Store == nil {
		return nil
	}
	return s.Store.Close()
}
