package database

import (
	"github.com/yeremiapane/restaurant-dashboard/models"
	"github.com/yeremiapane/restaurant-dashboard/utils"
	"gorm.io/gorm"
)

// Migrate creates missing tables and applies the additive column migrations
// for databases written by older versions. Safe to run on every start;
// a second run is a no-op.
func Migrate(db *gorm.DB) error {
	if err := ensureLegacyColumns(db); err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&models.Menu{},
		&models.Order{},
		&models.OrderItem{},
		&models.MiscExpense{},
		&models.Billing{},
	); err != nil {
		return err
	}

	utils.InfoLogger.Println("Migration completed.")
	return nil
}

// ensureLegacyColumns upgrades pre-existing menu/orders tables in place.
// Early databases shipped menu without cost and orders without created_at
// and the total columns. Columns are only ever added, never renamed or
// dropped.
func ensureLegacyColumns(db *gorm.DB) error {
	m := db.Migrator()

	if m.HasTable(&models.Menu{}) && !m.HasColumn(&models.Menu{}, "cost") {
		if err := m.AddColumn(&models.Menu{}, "cost"); err != nil {
			return err
		}
		utils.InfoLogger.Println("Added menu.cost column")
	}

	if m.HasTable(&models.Order{}) {
		backfill := false
		if !m.HasColumn(&models.Order{}, "created_at") {
			if err := m.AddColumn(&models.Order{}, "created_at"); err != nil {
				return err
			}
			backfill = true
		}
		for _, col := range []string{"total_revenue", "total_cost"} {
			if !m.HasColumn(&models.Order{}, col) {
				if err := m.AddColumn(&models.Order{}, col); err != nil {
					return err
				}
			}
		}
		if backfill {
			// Rows that predate the column get the migration time.
			if err := db.Exec(
				"UPDATE orders SET created_at = CURRENT_TIMESTAMP WHERE created_at IS NULL",
			).Error; err != nil {
				return err
			}
			utils.InfoLogger.Println("Backfilled orders.created_at")
		}
	}

	return nil
}
