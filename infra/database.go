// Package infra wires the application's infrastructure: database connection
// and logger construction.
package infra

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hazemf/atmledger/infra/repository"
	"github.com/hazemf/atmledger/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens the configured database. The sqlite driver is the
// default and mirrors the single-file store the service grew out of;
// postgres is for server deployments.
func NewDBConnection(cfg *config.DB, appEnv string) (*gorm.DB, error) {
	if cfg.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}
	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logMode),
		TranslateError: true,
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.Url)
	case "sqlite":
		dialector = sqlite.Open(sqliteDSN(cfg.Url))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	conn, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return conn, nil
}

// sqliteDSN makes sqlite take the write lock at BEGIN so concurrent apply
// units queue up instead of failing with SQLITE_BUSY mid-transaction. A DSN
// that already sets _txlock is left alone.
func sqliteDSN(url string) string {
	if strings.Contains(url, "_txlock") {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_txlock=immediate"
}

// Migrate creates or updates the users and transactions tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&repository.User{}, &repository.Transaction{})
}
