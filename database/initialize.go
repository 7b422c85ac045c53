package database

import (
	"echotap.link/configs/configslog"
	"echotap.link/database/migrations"
	"echotap.link/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize runs migrations and seeders inside one transaction.
func Initialize(db *gorm.DB, migrate bool, seed bool, seedOpts seeders.CardSeedOptions) {
	if !migrate && !seed {
		configslog.SLog.Info("Neither migrate nor seed requested, nothing to do.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Could not begin database transaction", zap.Error(tx.Error))
		return
	}

	committed := false
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Database initialization panicked", zap.Any("panic_info", r))
		} else if !committed {
			configslog.SLog.Warn("Rolling back database initialization.")
			if err := tx.Rollback().Error; err != nil && err != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Rollback failed", zap.Error(err))
			}
		}
	}()

	if migrate {
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migration failed", zap.Error(err))
			return
		}
	}

	if seed {
		if err := CheckAndRunSeeders(tx, seedOpts); err != nil {
			configslog.Log.Error("Seeding failed", zap.Error(err))
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		configslog.Log.Error("Commit failed", zap.Error(err))
		return
	}
	committed = true
	configslog.SLog.Info("Database initialization completed")
}

// RunMigrationsInOrder applies every migration.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info(" -> Running card migrations...")
	if err := migrations.MigrateCardsTable(db); err != nil {
		return err
	}
	configslog.SLog.Info("All migrations applied.")
	return nil
}

// CheckAndRunSeeders provisions the requested cards.
func CheckAndRunSeeders(db *gorm.DB, opts seeders.CardSeedOptions) error {
	if opts.Count == 0 && len(opts.Codes) == 0 {
		configslog.SLog.Info("No cards requested, skipping card seeder.")
		return nil
	}
	configslog.SLog.Info(" -> Running card seeder...")
	codes, err := seeders.SeedCards(db, opts)
	if err != nil {
		return err
	}
	for _, code := range codes {
		configslog.SLog.Infof("    new card: %s", code)
	}
	return nil
}
