package database

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"go-apparel-stock/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	once    sync.Once
	handle  *gorm.DB
	openErr error
)

// Open returns the process-wide database handle, opening it on first use.
// Re-entrant callers share the one memoized open instead of racing separate
// opens; the composition root owns the returned handle and injects it down.
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	once.Do(func() {
		handle, openErr = open(cfg)
	})
	return handle, openErr
}

func open(cfg config.DBConfig) (*gorm.DB, error) {
	newLogger := gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	gormCfg := &gorm.Config{Logger: newLogger}

	switch cfg.Driver {
	case "", "sqlite":
		dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", cfg.Path)
		db, err := gorm.Open(sqlite.Open(dsn), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store %q: %w", cfg.Path, err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// Single effective writer: one connection keeps sqlite happy under WAL.
		sqlDB.SetMaxOpenConns(1)
		return db, nil

	case "postgres":
		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DSN,
			PreferSimpleProtocol: true,
		}), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("opening postgres connection: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
