package database

// Import all drivers so a URL for any supported engine resolves without
// the caller importing driver packages one by one
import (
	_ "github.com/veldtlabs/dburl/drivers/cockroachdb"
	_ "github.com/veldtlabs/dburl/drivers/mongodb"
	_ "github.com/veldtlabs/dburl/drivers/mysql"
	_ "github.com/veldtlabs/dburl/drivers/oracle"
	_ "github.com/veldtlabs/dburl/drivers/postgresql"
	_ "github.com/veldtlabs/dburl/drivers/redshift"
	_ "github.com/veldtlabs/dburl/drivers/sqlite"
)
