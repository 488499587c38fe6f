package types

// URIParser defines the interface for engine-specific URL handling
type URIParser interface {
	// ParseURI parses a database URL into a Config if the URL is supported by this driver
	// Returns an error if the URL format is not supported or invalid
	ParseURI(uri string) (Config, error)

	// FormatDSN renders the config as the engine's native driver DSN
	FormatDSN(config Config) (string, error)

	// FormatURL renders the config back into its canonical URL form
	FormatURL(config Config) (string, error)

	// GetSupportedSchemes returns the URL schemes this parser supports (e.g., ["postgres", "postgresql"])
	GetSupportedSchemes() []string

	// GetEngine returns the engine this parser is for
	GetEngine() Engine

	// GetDefaultPort returns the engine's conventional port, 0 when it has none
	GetDefaultPort() int
}
