package base

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/veldtlabs/dburl/types"
)

// ParseNetworkURL parses a URL for an engine addressed over the network.
// The scheme must be one of allowedSchemes (compared lowercase). The port
// stays 0 when the URL does not name one; engine defaults are applied when
// a DSN is built, not here
func ParseNetworkURL(rawURL string, engine types.Engine, allowedSchemes []string) (types.Config, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return types.Config{}, &types.MalformedURLError{Reason: "not a valid URL", Err: err}
	}

	if u.Scheme == "" {
		return types.Config{}, &types.MalformedURLError{Reason: "URL has no scheme"}
	}
	if u.Opaque != "" {
		// no "//" after the scheme, e.g. "host:5432/db"
		return types.Config{}, &types.MalformedURLError{Reason: "URL has no authority part"}
	}
	scheme := strings.ToLower(u.Scheme)
	if !slices.Contains(allowedSchemes, scheme) {
		return types.Config{}, &types.UnsupportedSchemeError{Scheme: scheme}
	}

	config := types.Config{Engine: engine}
	if scheme != engine.String() {
		config.Scheme = scheme
	}

	if u.User != nil {
		config.User = u.User.Username()
		// an empty password after ":" parses to the empty string, same as none
		config.Password, _ = u.User.Password()
	}

	config.Host = u.Hostname()
	if portStr := u.Port(); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil || port <= 0 {
			return types.Config{}, &types.MalformedURLError{Reason: "invalid port " + strconv.Quote(portStr), Err: err}
		}
		config.Port = port
	}

	config.Database = strings.TrimPrefix(u.Path, "/")

	options, err := ParseOptions(u.RawQuery)
	if err != nil {
		return types.Config{}, err
	}
	config.Options = options

	return config, nil
}

// ParseOptions decodes a raw query string into an option map. A key given
// more than once keeps its last value. Returns nil for an empty query
func ParseOptions(rawQuery string) (map[string]string, error) {
	if rawQuery == "" {
		return nil, nil
	}

	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return nil, &types.MalformedURLError{Reason: "invalid query string", Err: err}
	}

	options := make(map[string]string, len(values))
	for key, vals := range values {
		options[key] = vals[len(vals)-1]
	}
	return options, nil
}
