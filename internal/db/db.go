package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barber-appointments/internal/config"
	"github.com/BruksfildServices01/barber-appointments/internal/models"
)

// noOverlapDDL backs the barber lock with a storage-level guarantee: two
// active appointments of one barber can never hold intersecting [start, end)
// ranges.
const noOverlapDDL = `
DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint WHERE conname = 'appointments_no_overlap'
	) THEN
		ALTER TABLE appointments
			ADD CONSTRAINT appointments_no_overlap
			EXCLUDE USING gist (
				barber_id WITH =,
				tstzrange(start_time, end_time, '[)') WITH &&
			)
			WHERE (status IN ('PENDING', 'CONFIRMED', 'IN_PROGRESS'));
	END IF;
END
$$;
`

const validIntervalDDL = `
DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint WHERE conname = 'appointments_valid_interval'
	) THEN
		ALTER TABLE appointments
			ADD CONSTRAINT appointments_valid_interval CHECK (end_time > start_time);
	END IF;
END
$$;
`

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the schema and the scheduling constraints. Safe to rerun.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return fmt.Errorf("failed to enable btree_gist: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Service{},
		&models.Barber{},
		&models.Client{},
		&models.Appointment{},
		&models.AppointmentService{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	for _, ddl := range []string{validIntervalDDL, noOverlapDDL} {
		if err := db.Exec(ddl).Error; err != nil {
			return fmt.Errorf("failed to add constraint: %w", err)
		}
	}

	return nil
}
