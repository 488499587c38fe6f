// Package cacheurl resolves cache broker URLs. It is the redis flavor of
// the database URL resolution in package database: read a URL from the
// environment, parse it into a Config, and render it back for a client or
// a Celery-style broker.
package cacheurl

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/veldtlabs/dburl/base"
	"github.com/veldtlabs/dburl/types"
)

const (
	// DefaultEnv is the environment variable consulted when no source
	// name is given
	DefaultEnv = "REDIS_URL"

	// DefaultURL is the development fallback used when nothing is
	// configured at all
	DefaultURL = "redis://localhost:6379/0"

	// DefaultPort is the conventional Redis port
	DefaultPort = 6379
)

// Config holds a parsed cache connection configuration
type Config struct {
	Scheme   string // "redis", or "rediss" for TLS
	Host     string
	Port     int // 0 when the URL does not specify one
	DB       int // database index, from the URL path
	User     string
	Password string
	TLS      bool
	Options  map[string]string
}

// Parse parses a redis or rediss URL into a Config
func Parse(rawURL string) (Config, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Config{}, &types.MalformedURLError{Reason: "not a valid URL", Err: err}
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme == "" {
		return Config{}, &types.MalformedURLError{Reason: "URL has no scheme"}
	}
	if u.Opaque != "" {
		return Config{}, &types.MalformedURLError{Reason: "URL has no authority part"}
	}
	if scheme != "redis" && scheme != "rediss" {
		return Config{}, &types.UnsupportedSchemeError{Scheme: scheme}
	}

	config := Config{Scheme: scheme, TLS: scheme == "rediss"}
	if u.User != nil {
		config.User = u.User.Username()
		config.Password, _ = u.User.Password()
	}

	config.Host = u.Hostname()
	if portStr := u.Port(); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil || port <= 0 {
			return Config{}, &types.MalformedURLError{Reason: fmt.Sprintf("invalid port %q", portStr)}
		}
		config.Port = port
	}

	if path := strings.TrimPrefix(u.Path, "/"); path != "" {
		db, err := strconv.Atoi(path)
		if err != nil || db < 0 {
			return Config{}, &types.MalformedURLError{Reason: fmt.Sprintf("invalid database index %q", path)}
		}
		config.DB = db
	}

	options, err := base.ParseOptions(u.RawQuery)
	if err != nil {
		return Config{}, err
	}
	config.Options = options

	return config, nil
}

// FromEnv resolves a cache URL from the named environment variable. An
// empty name means DefaultEnv. When the variable is unset or empty the
// resolution falls back to defaultURL, then to DefaultURL, so there is
// always a broker to talk to
func FromEnv(name, defaultURL string) (Config, error) {
	if name == "" {
		name = DefaultEnv
	}

	rawURL := os.Getenv(name)
	if rawURL == "" {
		rawURL = defaultURL
	}
	if rawURL == "" {
		rawURL = DefaultURL
	}
	return Parse(rawURL)
}

// URL returns the URL form of the config. The database index is always
// rendered, matching the canonical redis://host:port/0 shape
func (c Config) URL() string {
	scheme := c.Scheme
	if scheme == "" {
		scheme = "redis"
		if c.TLS {
			scheme = "rediss"
		}
	}

	u := url.URL{Scheme: scheme, Path: "/" + strconv.Itoa(c.DB)}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	} else if c.User != "" {
		u.User = url.User(c.User)
	}

	host := c.Host
	if strings.Contains(host, ":") && !strings.HasPrefix(host, "[") {
		host = "[" + host + "]"
	}
	if c.Port > 0 {
		host += ":" + strconv.Itoa(c.Port)
	}
	u.Host = host

	if len(c.Options) > 0 {
		values := make(url.Values, len(c.Options))
		for k, v := range c.Options {
			values.Set(k, v)
		}
		u.RawQuery = values.Encode()
	}

	return u.String()
}

// BrokerURL renders the URL handed to the task broker. When TLS
// verification is disabled the URL carries ssl_cert_reqs=none so clients
// skip certificate checks
func (c Config) BrokerURL(disableSSLVerify bool) string {
	if !disableSSLVerify {
		return c.URL()
	}

	merged := c
	merged.Options = make(map[string]string, len(c.Options)+1)
	for k, v := range c.Options {
		merged.Options[k] = v
	}
	merged.Options["ssl_cert_reqs"] = "none"
	return merged.URL()
}

// String implements fmt.Stringer. The password, if any, is masked so the
// value is safe to log
func (c Config) String() string {
	if c.Password == "" {
		return c.URL()
	}
	masked := c
	masked.Password = "xxxxx"
	return masked.URL()
}
