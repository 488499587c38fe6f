package sqlite

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/veldtlabs/dburl/registry"
	"github.com/veldtlabs/dburl/types"
)

func init() {
	// Register SQLite driver
	registry.Register(types.EngineSQLite, Open)

	// Register SQLite URI parser
	registry.RegisterURIParser(types.EngineSQLite, NewSQLiteURIParser())
}

// Open opens a SQLite connection handle for the config
func Open(config types.Config) (*sql.DB, error) {
	dsn, err := NewSQLiteURIParser().FormatDSN(config)
	if err != nil {
		return nil, err
	}
	return sql.Open("sqlite3", dsn)
}
