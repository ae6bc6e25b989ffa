package api

import (
	"database/sql"
	"testing"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/kashguard/go-docsig/internal/config"
	"github.com/kashguard/go-docsig/internal/docsig/audit"
	"github.com/kashguard/go-docsig/internal/docsig/inspect"
	"github.com/kashguard/go-docsig/internal/docsig/storage"
)

// PROVIDERS - define here only providers that for various reasons (e.g. cyclic dependency) can't live in their corresponding packages
// or for wrapping providers that only accept sub-configs to prevent the requirements for defining providers for sub-configs.
// https://github.com/google/wire/blob/main/docs/guide.md#defining-providers

func NewClock(t ...*testing.T) time2.Clock {
	var clock time2.Clock

	useMock := len(t) > 0 && t[0] != nil

	if useMock {
		clock = time2.NewMockClock(time.Now())
	} else {
		clock = time2.DefaultClock
	}

	return clock
}

// NewDB opens the database pool used by the audit store. sql.Open does not
// connect; the pool stays unused while the audit store is disabled.
func NewDB(cfg config.Server) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

func NoTest() []*testing.T {
	return nil
}

// Docsig Providers

// NewAuditStore creates the audit store backend based on configuration
//
//nolint:ireturn // returning interface is intentional for abstraction
func NewAuditStore(cfg config.Server, db *sql.DB) storage.AuditStore {
	if cfg.Docsig.EnableAuditStore {
		return storage.NewPostgreSQLStore(db)
	}

	return storage.NewNoopStore()
}

// NewAuditLogger creates audit logger
//
//nolint:ireturn // returning interface is intentional for abstraction
func NewAuditLogger(auditStore storage.AuditStore) audit.Logger {
	return audit.NewLogger(auditStore)
}

// NewInspectionService creates the document inspection service
//
//nolint:ireturn // returning interface is intentional for abstraction
func NewInspectionService(clock time2.Clock, auditLogger audit.Logger) (inspect.Service, error) {
	return inspect.NewService(clock, auditLogger)
}
