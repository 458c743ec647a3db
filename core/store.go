package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultOperationTimeout = 5 * time.Second

// Store owns the connection pool. Duplicate-key errors are translated to
// gorm.ErrDuplicatedKey so the unique (employee, date) index can be
// reported as a conflict instead of a raw driver error.
type Store struct {
	db      *gorm.DB
	timeout time.Duration
}

// Open creates the pool and verifies connectivity.
// dsn must include parseTime=true for the timestamp columns.
func Open(dsn string, maxConnection int) (*Store, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxConnection)
	sqlDB.SetMaxIdleConns(maxConnection)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping pool: %w", err)
	}

	return &Store{db: db, timeout: defaultOperationTimeout}, nil
}

// NewWithDB wraps an already-open gorm handle. Used by tests.
func NewWithDB(db *gorm.DB) *Store {
	return &Store{db: db, timeout: defaultOperationTimeout}
}

// Exec runs fn against a context-bound handle. Every store access is
// bounded by the operation timeout; hitting it surfaces as Unavailable,
// never as a partial silent success.
func (s *Store) Exec(ctx context.Context, fn func(db *gorm.DB) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := fn(s.db.WithContext(ctx))
	if errors.Is(err, context.DeadlineExceeded) {
		return Unavailable("store operation timed out", err)
	}
	return err
}

// Close closes the underlying pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
