package test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/kashguard/go-docsig/internal/api"
	"github.com/kashguard/go-docsig/internal/api/router"
	"github.com/kashguard/go-docsig/internal/config"
	"github.com/stretchr/testify/require"
)

// WithTestServer runs closure with a fully wired test server. The audit store
// is forced to the noop backend so no database is required.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Docsig.EnableAuditStore = false

	WithTestServerConfigurable(t, cfg, closure)
}

// WithTestServerConfigurable runs closure with a test server built from the
// given config.
func WithTestServerConfigurable(t *testing.T, cfg config.Server, closure func(s *api.Server)) {
	t.Helper()

	// sql.Open does not connect; with the noop audit store the pool stays unused
	db, err := sql.Open("postgres", cfg.Database.ConnectionString())
	require.NoError(t, err)

	s, err := api.InitNewServerWithDB(cfg, db, t)
	require.NoError(t, err)

	router.Init(s)

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
	}()

	closure(s)
}
