package database

import (
	"context"
	"errors"
	"fmt"
	"lottery_manager/config"
	"lottery_manager/model"
	"lottery_manager/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	STATUS_NOT_CONFIGURED = "not_configured"
	STATUS_UP             = "up"
	STATUS_DOWN           = "down"
)

var ErrNotConfigured = errors.New("database not configured")

// DB stays nil when no database is configured; routes answer 503 in that case.
var DB *gorm.DB

// DSN ưu tiên DATABASE_URL, sau đó tới bộ DB_HOST/DB_PORT/...
func DSN() string {
	if url := config.Config("DATABASE_URL"); url != "" {
		return url
	}
	host := config.Config("DB_HOST")
	if host == "" {
		return ""
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		host,
		config.Int("DB_PORT", 5432),
		config.Config("DB_USER"),
		config.Config("DB_PASSWORD"),
		config.Config("DB_NAME"),
		config.ConfigOr("DB_SSLMODE", "disable"),
	)
}

func ConnectDB() error {
	dsn := DSN()
	if dsn == "" {
		DB = nil
		utils.Log.Warn("no database configured, data routes will answer 503")
		return nil
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	utils.Log.Info("connection opened to database")

	if err := Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	utils.Log.Info("database migrated")

	DB = db
	return nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Ticket{},
		&model.WinningNumbers{},
	)
}

func Configured() bool {
	return DB != nil
}

func Ping(ctx context.Context) error {
	if DB == nil {
		return ErrNotConfigured
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Status(ctx context.Context) string {
	if !Configured() {
		return STATUS_NOT_CONFIGURED
	}
	if err := Ping(ctx); err != nil {
		return STATUS_DOWN
	}
	return STATUS_UP
}
