package base

import (
	"slices"

	"github.com/veldtlabs/dburl/types"
)

// Parser implements the network half of types.URIParser. Driver packages
// embed it and add their FormatDSN
type Parser struct {
	engine      types.Engine
	schemes     []string
	defaultPort int
}

// NewParser creates a parser for an engine claiming the given schemes
func NewParser(engine types.Engine, schemes []string, defaultPort int) Parser {
	return Parser{
		engine:      engine,
		schemes:     schemes,
		defaultPort: defaultPort,
	}
}

// ParseURI parses a network database URL
func (p Parser) ParseURI(uri string) (types.Config, error) {
	return ParseNetworkURL(uri, p.engine, p.schemes)
}

// FormatURL renders the canonical URL form
func (p Parser) FormatURL(config types.Config) (string, error) {
	return config.URL(), nil
}

// GetSupportedSchemes returns the URL schemes this parser supports
func (p Parser) GetSupportedSchemes() []string {
	return slices.Clone(p.schemes)
}

// GetEngine returns the engine this parser is for
func (p Parser) GetEngine() types.Engine {
	return p.engine
}

// GetDefaultPort returns the engine's conventional port
func (p Parser) GetDefaultPort() int {
	return p.defaultPort
}
