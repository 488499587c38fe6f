package types

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Config holds a parsed database connection configuration
type Config struct {
	Engine Engine

	// Scheme records the URL scheme the config was parsed from when it is
	// not the engine's own name (e.g. "postgres", "mongodb+srv"). Empty
	// means the canonical scheme
	Scheme string

	Host     string // empty for file-based engines
	Port     int    // 0 when the URL does not specify one
	Database string // database name, or file path for file-based engines
	User     string
	Password string
	Options  map[string]string // query parameters, decoded

	// Pool behavior, set from ResolveOptions rather than the URL
	ConnMaxAge       time.Duration
	ConnHealthChecks bool
	SSLRequire       bool
}

// ResolveOptions carries the caller-supplied settings that overlay a parsed
// URL. The zero value means: no default URL, no connection reuse, no health
// checks, no forced SSL
type ResolveOptions struct {
	// Default is the URL used when the environment variable is unset or
	// empty. Empty string means no default
	Default string

	ConnMaxAge       time.Duration
	ConnHealthChecks bool
	SSLRequire       bool
}

// filePathEscaper masks the characters that would terminate the path part
// of a file URL. Everything else stays readable
var filePathEscaper = strings.NewReplacer("%", "%25", "?", "%3F", "#", "%23")

// URL returns the URL form of the config. Parsing the result yields an
// equal Config
func (c Config) URL() string {
	scheme := c.Scheme
	if scheme == "" {
		scheme = c.Engine.String()
	}
	if c.Engine.FileBased() {
		out := scheme + "://" + filePathEscaper.Replace(c.Database)
		if len(c.Options) > 0 {
			out += "?" + encodeOptions(c.Options)
		}
		return out
	}

	u := url.URL{Scheme: scheme}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	} else if c.User != "" {
		u.User = url.User(c.User)
	}
	u.Host = c.hostport()
	if c.Database != "" {
		u.Path = "/" + c.Database
	}
	if len(c.Options) > 0 {
		u.RawQuery = encodeOptions(c.Options)
	}
	return u.String()
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

func (c Config) hostport() string {
	host := c.Host
	// a seed-list authority keeps its embedded per-host ports
	if strings.Contains(host, ",") {
		return host
	}
	// bare IPv6 literals need brackets inside a URL authority
	if strings.Contains(host, ":") && !strings.HasPrefix(host, "[") {
		host = "[" + host + "]"
	}
	if c.Port > 0 {
		return host + ":" + strconv.Itoa(c.Port)
	}
	return host
}

func encodeOptions(opts map[string]string) string {
	values := make(url.Values, len(opts))
	for k, v := range opts {
		values.Set(k, v)
	}
	return values.Encode()
}
