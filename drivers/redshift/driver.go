package redshift

import (
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/veldtlabs/dburl/registry"
	"github.com/veldtlabs/dburl/types"
)

func init() {
	// Redshift speaks the PostgreSQL wire protocol, so lib/pq serves it
	registry.Register(types.EngineRedshift, Open)
	registry.RegisterURIParser(types.EngineRedshift, NewRedshiftURIParser())
}

// Open opens a Redshift connection handle for the config
func Open(config types.Config) (*sql.DB, error) {
	dsn, err := NewRedshiftURIParser().FormatDSN(config)
	if err != nil {
		return nil, err
	}
	return sql.Open("postgres", dsn)
}
