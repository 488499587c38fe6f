package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/veldtlabs/dburl/cacheurl"
	"github.com/veldtlabs/dburl/database"
	"github.com/veldtlabs/dburl/types"
)

// DefaultConnMaxAge is the connection lifetime applied to the default
// database when it is resolved from a URL environment variable
const DefaultConnMaxAge = 600 * time.Second

// defaultURLChain is the set of variables checked, in order, for the
// default database URL
var defaultURLChain = []string{"DATABASE_URL", "POSTGRES_URL", "POSTGRESURL"}

// SQLiteFallbackFile is the database file used when nothing else is
// configured, so the settings always carry a usable database
const SQLiteFallbackFile = "db.sqlite3"

// ResolveEntry turns a settings file database entry into a connection
// config. The entry's source shapes are tried in order: literal URL,
// environment variable chain, discrete fields
func ResolveEntry(entry DatabaseEntry) (types.Config, error) {
	opts := types.ResolveOptions{
		ConnMaxAge:       time.Duration(entry.ConnMaxAge) * time.Second,
		ConnHealthChecks: entry.ConnHealthChecks,
		SSLRequire:       entry.SSLRequire,
	}

	if entry.URL != "" {
		return database.ParseWithOptions(expandEnvVars(entry.URL), opts)
	}

	if entry.Env != "" || len(entry.FallbackEnv) > 0 {
		names := entry.FallbackEnv
		if entry.Env != "" {
			names = append([]string{entry.Env}, entry.FallbackEnv...)
		}
		return database.FromEnvFallback(names, opts)
	}

	if entry.Host != "" || entry.Engine != "" {
		return resolveDiscrete(entry, opts)
	}

	return types.Config{}, errors.New("entry has no url, env source, or host")
}

// resolveDiscrete builds a config from an entry's discrete fields,
// expanding ${VAR} references the way secrets are usually injected
func resolveDiscrete(entry DatabaseEntry, opts types.ResolveOptions) (types.Config, error) {
	engine := types.EnginePostgreSQL
	if entry.Engine != "" {
		var err error
		engine, err = types.ParseEngine(entry.Engine)
		if err != nil {
			return types.Config{}, err
		}
	}

	config := types.Config{
		Engine:           engine,
		Port:             entry.Port,
		Database:         expandEnvVars(entry.Name),
		User:             expandEnvVars(entry.User),
		Password:         expandEnvVars(entry.Password),
		ConnMaxAge:       opts.ConnMaxAge,
		ConnHealthChecks: opts.ConnHealthChecks,
		SSLRequire:       opts.SSLRequire,
	}

	if !engine.FileBased() {
		config.Host = expandEnvVars(entry.Host)
		if config.Host == "" {
			config.Host = "localhost"
		}
	}

	if len(entry.Options) > 0 {
		config.Options = make(map[string]string, len(entry.Options))
		for k, v := range entry.Options {
			config.Options[k] = v
		}
	}
	return config, nil
}

// DefaultDatabase resolves the default database the way a fresh
// deployment expects: the URL variable chain first, discrete POSTGRES_*
// variables next, and a local sqlite file as the final fallback
func DefaultDatabase(baseDir string) (types.Config, error) {
	config, err := database.FromEnvFallback(defaultURLChain, types.ResolveOptions{ConnMaxAge: DefaultConnMaxAge})
	if err == nil {
		return config, nil
	}
	if !errors.Is(err, types.ErrMissingSource) {
		return types.Config{}, err
	}

	if host := envOr("POSTGRES_HOST", "DB_HOST"); host != "" {
		config := types.Config{
			Engine:   types.EnginePostgreSQL,
			Host:     host,
			Database: envOr("POSTGRES_DB", "DB_NAME"),
			User:     envOr("POSTGRES_USER", "DB_USER"),
			Password: envOr("POSTGRES_PASSWORD", "DB_PASSWORD"),
		}
		if portStr := envOr("POSTGRES_PORT", "DB_PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil || port <= 0 {
				return types.Config{}, &types.MalformedURLError{Reason: fmt.Sprintf("invalid port %q in environment", portStr)}
			}
			config.Port = port
		}
		return config, nil
	}

	return types.Config{
		Engine:   types.EngineSQLite,
		Database: filepath.Join(baseDir, SQLiteFallbackFile),
	}, nil
}

// resolveCache resolves the cache section, falling back to REDIS_URL and
// then the development broker. DISABLE_REDIS_SSL in the environment forces
// certificate checks off, same as the settings file flag
func resolveCache(entry *CacheEntry) (cacheurl.Config, bool, error) {
	disableSSLVerify := os.Getenv("DISABLE_REDIS_SSL") != ""

	rawURL := ""
	envName := ""
	if entry != nil {
		rawURL = expandEnvVars(entry.URL)
		envName = entry.Env
		if entry.DisableSSLVerify {
			disableSSLVerify = true
		}
	}

	if rawURL != "" {
		config, err := cacheurl.Parse(rawURL)
		return config, disableSSLVerify, err
	}
	config, err := cacheurl.FromEnv(envName, "")
	return config, disableSSLVerify, err
}

// expandEnvVars expands ${VAR} patterns in a string with environment
// variable values. Unset variables leave the pattern in place
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})
}

// envOr returns the first set, non-empty variable among names
func envOr(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
