package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/veldtlabs/dburl/base"
	"github.com/veldtlabs/dburl/logger"
	"github.com/veldtlabs/dburl/registry"
	"github.com/veldtlabs/dburl/types"
)

// Open opens a *sql.DB for the config using the engine's registered
// driver. The pool recycles connections older than ConnMaxAge, and when
// ConnHealthChecks is set the server is pinged before the handle is
// returned
func Open(ctx context.Context, config types.Config) (*sql.DB, error) {
	factory, err := registry.Get(config.Engine)
	if err != nil {
		return nil, err
	}

	dbLog := base.NewDBLogger(logger.GetGlobalLogger())

	start := time.Now()
	db, err := factory(config)
	if err != nil {
		return nil, err
	}
	if config.ConnMaxAge > 0 {
		db.SetConnMaxLifetime(config.ConnMaxAge)
	}
	dbLog.LogConnect(config.Engine.String(), config.String(), time.Since(start))

	if config.ConnHealthChecks {
		start = time.Now()
		err := db.PingContext(ctx)
		dbLog.LogPing(config.Engine.String(), time.Since(start), err)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return db, nil
}

// OpenURL parses a database URL and opens it in one step
func OpenURL(ctx context.Context, rawURL string, opts types.ResolveOptions) (*sql.DB, error) {
	config, err := ParseWithOptions(rawURL, opts)
	if err != nil {
		return nil, err
	}
	return Open(ctx, config)
}
