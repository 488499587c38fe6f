package cockroachdb

import (
	"fmt"

	"github.com/veldtlabs/dburl/base"
	"github.com/veldtlabs/dburl/types"
)

// DefaultPort is the conventional CockroachDB port
const DefaultPort = 26257

// CockroachDBURIParser implements URIParser for CockroachDB
type CockroachDBURIParser struct {
	base.Parser
}

// NewCockroachDBURIParser creates a new CockroachDB URI parser
func NewCockroachDBURIParser() *CockroachDBURIParser {
	return &CockroachDBURIParser{
		Parser: base.NewParser(types.EngineCockroachDB, []string{"cockroachdb", "cockroach", "crdb"}, DefaultPort),
	}
}

// FormatDSN renders a libpq keyword/value connection string
func (p *CockroachDBURIParser) FormatDSN(config types.Config) (string, error) {
	if config.Engine != types.EngineCockroachDB {
		return "", fmt.Errorf("config engine %s is not cockroachdb", config.Engine)
	}
	return base.KeywordDSN(config, DefaultPort), nil
}
