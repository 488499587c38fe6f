package oracle

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/veldtlabs/dburl/base"
	"github.com/veldtlabs/dburl/types"
)

// DefaultPort is the conventional Oracle listener port
const DefaultPort = 1521

// OracleURIParser implements URIParser for Oracle
type OracleURIParser struct {
	base.Parser
}

// NewOracleURIParser creates a new Oracle URI parser
func NewOracleURIParser() *OracleURIParser {
	return &OracleURIParser{
		Parser: base.NewParser(types.EngineOracle, []string{"oracle"}, DefaultPort),
	}
}

// FormatDSN renders an EZConnect-style connect string,
// user/password@host:port/service
func (p *OracleURIParser) FormatDSN(config types.Config) (string, error) {
	if config.Engine != types.EngineOracle {
		return "", fmt.Errorf("config engine %s is not oracle", config.Engine)
	}

	var b strings.Builder
	if config.User != "" {
		b.WriteString(config.User)
		if config.Password != "" {
			b.WriteString("/")
			b.WriteString(config.Password)
		}
		b.WriteString("@")
	}

	b.WriteString(config.Host)
	port := config.Port
	if port == 0 {
		port = DefaultPort
	}
	b.WriteString(":")
	b.WriteString(strconv.Itoa(port))

	if config.Database != "" {
		b.WriteString("/")
		b.WriteString(config.Database)
	}

	if len(config.Options) > 0 {
		values := make(url.Values, len(config.Options))
		for k, v := range config.Options {
			values.Set(k, v)
		}
		b.WriteString("?")
		b.WriteString(values.Encode())
	}
	return b.String(), nil
}
