package mongodb

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/veldtlabs/dburl/base"
	"github.com/veldtlabs/dburl/types"
)

// DefaultPort is the conventional MongoDB port
const DefaultPort = 27017

// MongoDBURIParser handles mongodb and mongodb+srv URLs. It does its own
// authority parsing because a replica set URL carries a comma-separated
// seed list that net/url's Hostname/Port accessors would mangle
type MongoDBURIParser struct {
	base.Parser
}

// NewMongoDBURIParser creates a new MongoDB URI parser
func NewMongoDBURIParser() *MongoDBURIParser {
	return &MongoDBURIParser{
		Parser: base.NewParser(types.EngineMongoDB, []string{"mongodb", "mongodb+srv"}, DefaultPort),
	}
}

// ParseURI parses a MongoDB URL into a Config
func (p *MongoDBURIParser) ParseURI(uri string) (types.Config, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return types.Config{}, &types.MalformedURLError{Reason: "not a valid URL", Err: err}
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme == "" {
		return types.Config{}, &types.MalformedURLError{Reason: "URL has no scheme"}
	}
	if u.Opaque != "" {
		// no "//" after the scheme, e.g. "mongodb:localhost/app"
		return types.Config{}, &types.MalformedURLError{Reason: "URL has no authority part"}
	}
	if !slices.Contains(p.GetSupportedSchemes(), scheme) {
		return types.Config{}, &types.UnsupportedSchemeError{Scheme: scheme}
	}
	if u.Host == "" {
		return types.Config{}, &types.MalformedURLError{Reason: "URL has no host"}
	}

	config := types.Config{Engine: types.EngineMongoDB}
	if scheme != types.EngineMongoDB.String() {
		config.Scheme = scheme
	}
	if u.User != nil {
		config.User = u.User.Username()
		config.Password, _ = u.User.Password()
	}

	srv := scheme == "mongodb+srv"
	if strings.Contains(u.Host, ",") {
		if srv {
			return types.Config{}, &types.MalformedURLError{Reason: "mongodb+srv URL must name a single host"}
		}
		// seed list; per-host ports stay embedded in the authority
		config.Host = u.Host
	} else {
		config.Host = u.Hostname()
		if portStr := u.Port(); portStr != "" {
			if srv {
				return types.Config{}, &types.MalformedURLError{Reason: "mongodb+srv URL must not include a port"}
			}
			port, err := strconv.Atoi(portStr)
			if err != nil || port <= 0 {
				return types.Config{}, &types.MalformedURLError{Reason: fmt.Sprintf("invalid port %q", portStr)}
			}
			config.Port = port
		}
	}

	config.Database = strings.TrimPrefix(u.Path, "/")

	options, err := base.ParseOptions(u.RawQuery)
	if err != nil {
		return types.Config{}, err
	}
	config.Options = options

	return config, nil
}

// FormatURL renders the canonical URL form, keeping a seed list authority
// intact
func (p *MongoDBURIParser) FormatURL(config types.Config) (string, error) {
	if config.Engine != types.EngineMongoDB {
		return "", fmt.Errorf("config engine %s is not mongodb", config.Engine)
	}

	scheme := config.Scheme
	if scheme == "" {
		scheme = types.EngineMongoDB.String()
	}

	u := url.URL{Scheme: scheme}
	if config.Password != "" {
		u.User = url.UserPassword(config.User, config.Password)
	} else if config.User != "" {
		u.User = url.User(config.User)
	}

	host := config.Host
	if !strings.Contains(host, ",") {
		if strings.Contains(host, ":") && !strings.HasPrefix(host, "[") {
			host = "[" + host + "]"
		}
		if config.Port > 0 {
			host += ":" + strconv.Itoa(config.Port)
		}
	}
	u.Host = host

	if config.Database != "" {
		u.Path = "/" + config.Database
	} else if len(config.Options) > 0 {
		// the driver requires the delimiting slash before options
		u.Path = "/"
	}

	if len(config.Options) > 0 {
		values := make(url.Values, len(config.Options))
		for k, v := range config.Options {
			values.Set(k, v)
		}
		u.RawQuery = values.Encode()
	}

	return u.String(), nil
}

// FormatDSN renders the connection string handed to the MongoDB driver.
// The official driver consumes standard mongodb URLs, so the DSN is the
// URL itself
func (p *MongoDBURIParser) FormatDSN(config types.Config) (string, error) {
	return p.FormatURL(config)
}
