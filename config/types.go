// Package config loads application settings from a YAML file, environment
// variables, and CLI flags, and resolves every configured database and
// cache entry into a ready-to-use connection config.
package config

import (
	"github.com/veldtlabs/dburl/cacheurl"
	"github.com/veldtlabs/dburl/types"
)

// DatabaseEntry is one database in the settings file. Exactly one source
// shape is expected: a literal url, an environment variable chain
// (env/fallback_env), or discrete fields
type DatabaseEntry struct {
	URL         string   `koanf:"url"`
	Env         string   `koanf:"env"`
	FallbackEnv []string `koanf:"fallback_env"`

	Engine   string            `koanf:"engine"`
	Host     string            `koanf:"host"`
	Port     int               `koanf:"port"`
	Name     string            `koanf:"name"`
	User     string            `koanf:"user"`
	Password string            `koanf:"password"`
	Options  map[string]string `koanf:"options"`

	// ConnMaxAge is in seconds, the way deployment manifests write it
	ConnMaxAge       int  `koanf:"conn_max_age"`
	ConnHealthChecks bool `koanf:"conn_health_checks"`
	SSLRequire       bool `koanf:"ssl_require"`
}

// CacheEntry is the cache broker section of the settings file
type CacheEntry struct {
	URL              string `koanf:"url"`
	Env              string `koanf:"env"`
	DisableSSLVerify bool   `koanf:"disable_ssl_verify"`
}

// EnvConfig holds per-environment overrides. Nil pointers and empty
// values mean "keep the base setting"
type EnvConfig struct {
	Debug     *bool                    `koanf:"debug"`
	LogLevel  string                   `koanf:"log_level"`
	Databases map[string]DatabaseEntry `koanf:"databases"`
	Cache     *CacheEntry              `koanf:"cache"`
}

// FileConfig mirrors the settings file layout before resolution
type FileConfig struct {
	Environment  string                   `koanf:"environment"`
	Debug        bool                     `koanf:"debug"`
	LogLevel     string                   `koanf:"log_level"`
	Databases    map[string]DatabaseEntry `koanf:"databases"`
	Cache        *CacheEntry              `koanf:"cache"`
	Environments map[string]EnvConfig     `koanf:"environments"`
}

// Settings is the fully resolved configuration: every database entry
// parsed into a connection config and the cache broker ready to dial
type Settings struct {
	Environment string
	Debug       bool
	LogLevel    string

	// BaseDir anchors relative paths, the directory of the settings file
	// or the working directory when no file was found
	BaseDir string

	// ConfigFileUsed is the settings file the load read, empty when the
	// configuration came from defaults and the environment alone
	ConfigFileUsed string

	Databases map[string]types.Config

	Cache                 cacheurl.Config
	CacheDisableSSLVerify bool
}

// DefaultDB returns the resolved default database
func (s *Settings) DefaultDB() types.Config {
	return s.Databases["default"]
}

// CacheBrokerURL renders the broker URL for the resolved cache config
func (s *Settings) CacheBrokerURL() string {
	return s.Cache.BrokerURL(s.CacheDisableSSLVerify)
}
