package app

import (
	"fmt"
	"path"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/talkincode/tinyshop/config"
	"github.com/talkincode/tinyshop/internal/store"
)

// getDatabase opens the configured database and panics when it cannot,
// the service has nothing to serve without it.
func getDatabase(cfg config.DBConfig, workdir string) *gorm.DB {
	db, err := OpenDatabase(cfg, workdir)
	if err != nil {
		zap.S().Panicf("open %s database failed: %v", cfg.Type, err)
	}
	return db
}

// OpenDatabase opens a gorm pool for postgres or sqlite
func OpenDatabase(cfg config.DBConfig, workdir string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Type {
	case "sqlite":
		dialector = store.OpenSQLite(sqliteDSN(cfg, workdir))
	case "postgres", "":
		dialector = postgres.Open(fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=UTC",
			cfg.Host, cfg.User, cfg.Passwd, cfg.Name, cfg.Port, sslMode(cfg),
		))
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.Type)
	}

	logLevel := logger.Warn
	if cfg.Debug {
		logLevel = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Type == "sqlite" {
		// sqlite serializes writers; a single connection avoids SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxConn)
		sqlDB.SetMaxIdleConns(cfg.IdleConn)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}
	return db, nil
}

func sqliteDSN(cfg config.DBConfig, workdir string) string {
	name := cfg.Name
	if name == "" {
		name = "tinyshop.db"
	}
	if name == ":memory:" || filepath.IsAbs(name) {
		return name
	}
	return path.Join(workdir, "data", name)
}

func sslMode(cfg config.DBConfig) string {
	if cfg.SSLMode == "" {
		return "disable"
	}
	return cfg.SSLMode
}
