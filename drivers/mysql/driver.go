package mysql

import (
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
	"github.com/veldtlabs/dburl/registry"
	"github.com/veldtlabs/dburl/types"
)

func init() {
	// Register MySQL driver
	registry.Register(types.EngineMySQL, Open)

	// Register MySQL URI parser
	registry.RegisterURIParser(types.EngineMySQL, NewMySQLURIParser())
}

// Open opens a MySQL connection handle for the config
func Open(config types.Config) (*sql.DB, error) {
	dsn, err := NewMySQLURIParser().FormatDSN(config)
	if err != nil {
		return nil, err
	}
	return sql.Open("mysql", dsn)
}
