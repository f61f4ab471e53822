package migrate

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/myezz/restaurant-api/pkg/config"
	"github.com/myezz/restaurant-api/pkg/db"
	"github.com/myezz/restaurant-api/pkg/db/models"
	"github.com/myezz/restaurant-api/pkg/logger"
)

// MaybeRunDev applies pending migrations on boot when the auto-migrate flag is
// enabled outside prod. SQLite connections get gorm AutoMigrate instead of goose.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if cfg.App.IsProd() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	ctx = logg.WithFields(ctx, map[string]any{
		"env":     cfg.App.Env,
		"dialect": client.Dialect(),
	})

	if client.Dialect() == db.DialectSQLite {
		logg.Info(ctx, "auto-migrating sqlite schema")
		if err := AutoMigrate(ctx, client, cfg.Tenant.DefaultID); err != nil {
			return err
		}
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	ctx = logg.WithField(ctx, "dir", DefaultDir)
	logg.Info(ctx, "running goose migrations (auto-run)")
	if err := Run(ctx, sqlDB, DefaultDir, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}
	logg.Info(ctx, "goose migrations completed")
	return nil
}

// AutoMigrate creates the schema from the gorm models and seeds the default
// restaurant, both inside one transaction. An empty or malformed seed id skips
// the seed.
func AutoMigrate(ctx context.Context, client *db.Client, seedRestaurantID string) error {
	return client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(models.All()...); err != nil {
			return fmt.Errorf("auto-migrating models: %w", err)
		}

		id, err := uuid.Parse(seedRestaurantID)
		if err != nil {
			return nil
		}
		seed := models.Restaurant{
			ID:           id,
			Name:         "MyEzz Demo Kitchen",
			BusinessName: "MyEzz Foods Pvt Ltd",
			GSTIN:        "27AAPFU0939F1ZV",
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
			return fmt.Errorf("seeding default restaurant: %w", err)
		}
		return nil
	})
}
