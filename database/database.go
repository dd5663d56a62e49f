package database

import (
	"fmt"
	"os"

	"homecooked/config"
	"homecooked/logger"
	"homecooked/models"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// dialector picks the GORM driver for the configured DB_DRIVER.
func dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "postgres", "":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
		)
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
		)
		return mysql.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(cfg.DBPath), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// ConnectDb opens the configured database, runs migrations and seeds it.
func ConnectDb() {
	cfg := config.AppConfig

	dial, err := dialector(cfg)
	if err != nil {
		logger.Log.Fatalf("Failed to configure database: %v", err)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		logger.Log.Fatalf("Failed to connect to %s: %v", cfg.DBDriver, err)
		os.Exit(2)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	if err := runMigrations(db); err != nil {
		logger.Log.Fatalf("Migration failed: %v", err)
	}

	if err := EnsureAdmin(db, cfg.AdminEmail, cfg.AdminPassword, cfg.SaltRound); err != nil {
		logger.Log.Errorf("Failed to seed admin account: %v", err)
	}
	if cfg.SeedDemoData {
		if err := SeedDemoData(db); err != nil {
			logger.Log.Errorf("Failed to seed demo data: %v", err)
		}
	}

	Database = DbInstance{Db: db}
}

// ConnectTestDb opens a private in-memory SQLite database, migrates it and
// installs it as the global instance.
func ConnectTestDb() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := runMigrations(db); err != nil {
		return nil, err
	}
	Database = DbInstance{Db: db}
	return db, nil
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) error {
	logger.Log.Info("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.LoginTracking{},
		&models.RevokedToken{},
		&models.Profile{},
		&models.Recipe{},
		&models.SavedRecipe{},
		&models.Cart{},
		&models.Order{},
		&models.WeeklyMenu{},
		&models.Producer{},
		&models.JournalEntry{},
		&models.SubscriptionPlan{},
	)
	if err != nil {
		return err
	}

	logger.Log.Info("Migrations completed successfully.")
	return nil
}
