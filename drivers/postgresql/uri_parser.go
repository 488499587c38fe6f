package postgresql

import (
	"fmt"

	"github.com/veldtlabs/dburl/base"
	"github.com/veldtlabs/dburl/types"
)

// DefaultPort is the conventional PostgreSQL port
const DefaultPort = 5432

// PostgreSQLURIParser implements URIParser for PostgreSQL
type PostgreSQLURIParser struct {
	base.Parser
}

// NewPostgreSQLURIParser creates a new PostgreSQL URI parser
func NewPostgreSQLURIParser() *PostgreSQLURIParser {
	return &PostgreSQLURIParser{
		Parser: base.NewParser(types.EnginePostgreSQL, []string{"postgresql", "postgres", "pgsql"}, DefaultPort),
	}
}

// FormatDSN renders a libpq keyword/value connection string
func (p *PostgreSQLURIParser) FormatDSN(config types.Config) (string, error) {
	if config.Engine != types.EnginePostgreSQL {
		return "", fmt.Errorf("config engine %s is not postgresql", config.Engine)
	}
	return base.KeywordDSN(config, DefaultPort), nil
}
