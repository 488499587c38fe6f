// Package database resolves database connection URLs. A URL is read from a
// literal string or an environment variable, parsed into a types.Config,
// and handed back as the config itself, a canonical URL, a native driver
// DSN, or an open *sql.DB.
package database

import (
	"os"

	"github.com/veldtlabs/dburl/registry"
	"github.com/veldtlabs/dburl/types"
)

// DefaultEnv is the environment variable consulted when no source name is
// given
const DefaultEnv = "DATABASE_URL"

// Parse parses a database URL into a Config
func Parse(rawURL string) (types.Config, error) {
	return registry.ParseURI(rawURL)
}

// ParseWithOptions parses a database URL and overlays the caller-supplied
// pool settings. The overlay always wins over anything the URL carries
func ParseWithOptions(rawURL string, opts types.ResolveOptions) (types.Config, error) {
	config, err := registry.ParseURI(rawURL)
	if err != nil {
		return types.Config{}, err
	}

	config.ConnMaxAge = opts.ConnMaxAge
	config.ConnHealthChecks = opts.ConnHealthChecks
	config.SSLRequire = opts.SSLRequire
	return config, nil
}

// FromEnv resolves a database URL from the named environment variable. An
// empty name means DefaultEnv. When the variable is unset or empty the
// resolution falls back to opts.Default; when neither is usable the result
// is ErrMissingSource
func FromEnv(name string, opts types.ResolveOptions) (types.Config, error) {
	if name == "" {
		name = DefaultEnv
	}

	rawURL := os.Getenv(name)
	if rawURL == "" {
		rawURL = opts.Default
	}
	if rawURL == "" {
		return types.Config{}, types.ErrMissingSource
	}
	return ParseWithOptions(rawURL, opts)
}

// FromEnvFallback resolves from the first variable in names that is set
// and non-empty. An empty list behaves like FromEnv("")
func FromEnvFallback(names []string, opts types.ResolveOptions) (types.Config, error) {
	if len(names) == 0 {
		return FromEnv("", opts)
	}

	for _, name := range names {
		if rawURL := os.Getenv(name); rawURL != "" {
			return ParseWithOptions(rawURL, opts)
		}
	}
	if opts.Default != "" {
		return ParseWithOptions(opts.Default, opts)
	}
	return types.Config{}, types.ErrMissingSource
}

// FormatURL renders the canonical URL form of a config
func FormatURL(config types.Config) (string, error) {
	parser, err := registry.GetURIParser(config.Engine)
	if err != nil {
		return "", err
	}
	return parser.FormatURL(config)
}

// FormatDSN renders the native connection string the engine's driver
// expects
func FormatDSN(config types.Config) (string, error) {
	parser, err := registry.GetURIParser(config.Engine)
	if err != nil {
		return "", err
	}
	return parser.FormatDSN(config)
}
