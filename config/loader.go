package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/veldtlabs/dburl/types"
)

// ConfigFileName is the name of the settings file
const ConfigFileName = "dburl.yaml"

// ConfigFileNameAlt is the alternate name of the settings file
const ConfigFileNameAlt = "dburl.yml"

// DefaultEnvironment is the active environment when none is configured
const DefaultEnvironment = "development"

// envPrefix namespaces the environment variables the loader reads,
// DBURL_ENVIRONMENT, DBURL_DEBUG, DBURL_LOG_LEVEL
const envPrefix = "DBURL_"

// maxUpwardSearchLevels limits how far up the directory tree to search
// for a settings file
const maxUpwardSearchLevels = 10

// configExistsIn checks if a settings file exists in the directory
func configExistsIn(dir string) bool {
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// findConfigFile finds the settings file to use.
// Priority: explicit path > dburl.yaml > dburl.yml, searching upward from
// the working directory
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}

	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for i := 0; i < maxUpwardSearchLevels; i++ {
		for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return ""
}

// Load reads configuration from the settings file, DBURL_ environment
// variables, and the given flag set, then resolves every database and
// cache entry.
// Precedence (highest to lowest): flags > env vars > settings file > defaults
func Load(cfgFile string, flags *pflag.FlagSet) (*Settings, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"environment": DefaultEnvironment,
		"debug":       false,
		"log_level":   "info",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Settings file
	configFileUsed := findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Environment variables.
	// Transform: DBURL_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags (highest priority)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			// Transform kebab-case to snake_case for config keys
			key := strings.ReplaceAll(f.Name, "-", "_")
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg FileConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Apply environment-specific overrides
	if cfg.Environment != "" && cfg.Environments != nil {
		if envCfg, ok := cfg.Environments[cfg.Environment]; ok {
			if envCfg.Debug != nil {
				cfg.Debug = *envCfg.Debug
			}
			if envCfg.LogLevel != "" {
				cfg.LogLevel = envCfg.LogLevel
			}
			if envCfg.Cache != nil {
				cfg.Cache = envCfg.Cache
			}
			for name, entry := range envCfg.Databases {
				if cfg.Databases == nil {
					cfg.Databases = make(map[string]DatabaseEntry)
				}
				cfg.Databases[name] = entry
			}
		}
	}

	baseDir := ""
	if configFileUsed != "" {
		if abs, err := filepath.Abs(configFileUsed); err == nil {
			baseDir = filepath.Dir(abs)
		}
	}
	if baseDir == "" {
		baseDir, _ = os.Getwd()
	}

	return resolve(cfg, baseDir, configFileUsed)
}

// resolve turns the raw file config into ready-to-use settings
func resolve(cfg FileConfig, baseDir, configFileUsed string) (*Settings, error) {
	settings := &Settings{
		Environment:    cfg.Environment,
		Debug:          cfg.Debug,
		LogLevel:       cfg.LogLevel,
		BaseDir:        baseDir,
		ConfigFileUsed: configFileUsed,
		Databases:      make(map[string]types.Config, len(cfg.Databases)+1),
	}

	for name, entry := range cfg.Databases {
		config, err := ResolveEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("database %q: %w", name, err)
		}
		settings.Databases[name] = config
	}

	// The default database is always present; a missing entry falls back
	// to the environment resolution chain
	if _, ok := settings.Databases["default"]; !ok {
		config, err := DefaultDatabase(baseDir)
		if err != nil {
			return nil, fmt.Errorf("database %q: %w", "default", err)
		}
		settings.Databases["default"] = config
	}

	cache, disableSSLVerify, err := resolveCache(cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	settings.Cache = cache
	settings.CacheDisableSSLVerify = disableSSLVerify

	return settings, nil
}
