package redshift

import (
	"fmt"

	"github.com/veldtlabs/dburl/base"
	"github.com/veldtlabs/dburl/types"
)

// DefaultPort is the conventional Redshift port
const DefaultPort = 5439

// RedshiftURIParser implements URIParser for Amazon Redshift
type RedshiftURIParser struct {
	base.Parser
}

// NewRedshiftURIParser creates a new Redshift URI parser
func NewRedshiftURIParser() *RedshiftURIParser {
	return &RedshiftURIParser{
		Parser: base.NewParser(types.EngineRedshift, []string{"redshift"}, DefaultPort),
	}
}

// FormatDSN renders a libpq keyword/value connection string
func (p *RedshiftURIParser) FormatDSN(config types.Config) (string, error) {
	if config.Engine != types.EngineRedshift {
		return "", fmt.Errorf("config engine %s is not redshift", config.Engine)
	}
	return base.KeywordDSN(config, DefaultPort), nil
}
