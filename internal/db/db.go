package db

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cafe-directory/internal/config"
	"github.com/BruksfildServices01/cafe-directory/internal/models"
)

// NewDB opens the configured backend and creates the schema if absent.
func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := OpenWithLogger(cfg.DBDriver, cfg.DBUrl, log)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	if err := Migrate(db); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	log.Info("database ready",
		zap.String("driver", cfg.DBDriver),
	)
	return db
}

// Open is OpenWithLogger without SQL logging.
func Open(driver, dsn string) (*gorm.DB, error) {
	return OpenWithLogger(driver, dsn, zap.NewNop())
}

// OpenWithLogger connects and tunes the pool. Slow queries and SQL errors
// are written to log; missing records are not.
func OpenWithLogger(driver, dsn string, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	case config.DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		Logger:         newGormLogger(log),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if driver == config.DriverSQLite {
		// single writer; also keeps an in-memory database alive for the life of the pool
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		sqlDB.SetConnMaxIdleTime(0)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Cafe{},
		&models.AuditLog{},
	)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
