// Package db opens and migrates the relational store.
package db

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "market_backend/internal/feature/auth/domain/entity"
	offeradapters "market_backend/internal/feature/offers/adapters"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// retryInterval is the pause between two connection attempts.
var retryInterval = 3 * time.Second

// Opener opens a connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// Dialector returns the gorm dialector for driver.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverPostgres, "":
		return postgres.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Open connects to the store, retrying until timeout elapses.
// Driver errors are translated so that unique violations surface as gorm.ErrDuplicatedKey.
func Open(driver, dsn string, timeout time.Duration) (*gorm.DB, error) {
	dialector, err := Dialector(driver, dsn)
	if err != nil {
		return nil, err
	}
	opener := func(string) (*gorm.DB, error) {
		return gorm.Open(dialector, &gorm.Config{TranslateError: true})
	}
	db, err := ConnectWithRetry(dsn, timeout, opener)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// SQLite allows a single writer.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// ConnectWithRetry calls open until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if !time.Now().Before(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		logrus.WithFields(logrus.Fields{"error": err}).Warn("db connect failed, retrying")
		time.Sleep(retryInterval)
	}
}

// Migrate creates or updates the users and offers tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&authentity.User{}, &offeradapters.OfferModel{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
