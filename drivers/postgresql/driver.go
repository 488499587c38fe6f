package postgresql

import (
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/veldtlabs/dburl/registry"
	"github.com/veldtlabs/dburl/types"
)

func init() {
	// Register PostgreSQL driver
	registry.Register(types.EnginePostgreSQL, Open)

	// Register PostgreSQL URI parser
	registry.RegisterURIParser(types.EnginePostgreSQL, NewPostgreSQLURIParser())
}

// Open opens a PostgreSQL connection handle for the config. The handle is
// lazy; no network traffic happens until it is used
func Open(config types.Config) (*sql.DB, error) {
	dsn, err := NewPostgreSQLURIParser().FormatDSN(config)
	if err != nil {
		return nil, err
	}
	return sql.Open("postgres", dsn)
}
