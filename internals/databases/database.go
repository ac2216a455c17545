package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"reach_backend/internals/configs"
	adminModel "reach_backend/internals/features/admins/auth/model"
	queryModel "reach_backend/internals/features/queries/model"
	userModel "reach_backend/internals/features/users/model"
	paymentModel "reach_backend/internals/features/workshops/payments/model"
)

// Connect opens the PostgreSQL pool. PreferSimpleProtocol keeps it usable
// behind PgBouncer in transaction pooling mode.
func Connect(cfg configs.Config, logger zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.Database.DSN(cfg.AppName),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(logger),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := TunePool(db, cfg.Database); err != nil {
		return nil, err
	}
	return db, nil
}

func TunePool(db *gorm.DB, cfg configs.DatabaseConfig) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("pool tune: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
	return nil
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Models lists every table this backend reads or writes, in dependency order.
func Models() []any {
	return []any{
		&userModel.UserModel{},
		&adminModel.AdminModel{},
		&paymentModel.WorkshopPaymentModel{},
		&paymentModel.WorkshopModel{},
		&queryModel.QueryModel{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
