package db

import (
	"fmt"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/VaibhaviS123/SafeStay/internal/models"
)

// constraints are applied after AutoMigrate. The exclusion constraint is what
// makes double booking impossible across concurrent transactions.
var constraints = []string{
	`CREATE EXTENSION IF NOT EXISTS btree_gist`,
	`DO $$ BEGIN
		ALTER TABLE bookings ADD CONSTRAINT bookings_no_overlap
		EXCLUDE USING gist (
			property_id WITH =,
			daterange(check_in, check_out, '[)') WITH &&
		) WHERE (status IN ('pending', 'confirmed', 'checked_in'));
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`DO $$ BEGIN
		ALTER TABLE bookings ADD CONSTRAINT bookings_dates_check CHECK (check_out > check_in);
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`DO $$ BEGIN
		ALTER TABLE bookings ADD CONSTRAINT bookings_guests_check CHECK (guests >= 1);
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`DO $$ BEGIN
		ALTER TABLE reviews ADD CONSTRAINT reviews_rating_check CHECK (rating BETWEEN 1 AND 5);
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
}

func NewDB(dsn string, logger log.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db, logger); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB, logger log.Logger) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Credential{},
		&models.Property{},
		&models.PropertyImage{},
		&models.Booking{},
		&models.Review{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	for _, stmt := range constraints {
		if err := db.Exec(stmt).Error; err != nil {
			level.Warn(logger).Log("msg", "constraint not applied", "err", err)
		}
	}

	return nil
}
