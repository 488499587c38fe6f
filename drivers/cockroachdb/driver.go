package cockroachdb

import (
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/veldtlabs/dburl/registry"
	"github.com/veldtlabs/dburl/types"
)

func init() {
	// CockroachDB speaks the PostgreSQL wire protocol, so lib/pq serves it
	registry.Register(types.EngineCockroachDB, Open)
	registry.RegisterURIParser(types.EngineCockroachDB, NewCockroachDBURIParser())
}

// Open opens a CockroachDB connection handle for the config
func Open(config types.Config) (*sql.DB, error) {
	dsn, err := NewCockroachDBURIParser().FormatDSN(config)
	if err != nil {
		return nil, err
	}
	return sql.Open("postgres", dsn)
}
