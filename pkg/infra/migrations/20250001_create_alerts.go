package migrations

import (
	"github.com/libratrack/alertgate/pkg/infra/database"
	"gorm.io/gorm"
)

// Initial schema: the alerts table holding both simulated and real
// detections, indexed for the mode-filtered, newest-first listing.
func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250001_create_alerts",
		Name: "Create alerts table",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE EXTENSION IF NOT EXISTS pgcrypto;
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS alerts (
					id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					attack_type    TEXT NOT NULL,
					source_ip      TEXT NOT NULL DEFAULT '0.0.0.0',
					destination_ip TEXT NOT NULL DEFAULT '0.0.0.0',
					rule_priority  INT NOT NULL DEFAULT 3,
					summary        TEXT NOT NULL DEFAULT '',
					alert_time     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					detection_mode TEXT NOT NULL DEFAULT 'simulated'
				);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_alerts_mode_time
				ON alerts (detection_mode, alert_time DESC);
			`).Error; err != nil {
				return err
			}

			return db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_alerts_priority
				ON alerts (rule_priority);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS alerts;`).Error
		},
	})
}
