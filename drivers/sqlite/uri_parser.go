package sqlite

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/veldtlabs/dburl/base"
	"github.com/veldtlabs/dburl/types"
)

var supportedSchemes = []string{"sqlite", "sqlite3"}

// SQLiteURIParser implements URIParser for SQLite databases
type SQLiteURIParser struct{}

// NewSQLiteURIParser creates a new SQLite URI parser
func NewSQLiteURIParser() *SQLiteURIParser {
	return &SQLiteURIParser{}
}

// ParseURI parses a SQLite URL and returns a Config
// Supported formats:
//   - sqlite:///path/to/database.db (absolute path)
//   - sqlite://path/to/database.db (relative path)
//   - sqlite://:memory: (in-memory database)
//   - sqlite3://... (scheme alias)
//
// The path is kept verbatim in Config.Database; SQLite has no authority
// part, so everything between "://" and "?" is the file path
func (p *SQLiteURIParser) ParseURI(uri string) (types.Config, error) {
	schemePart, rest, found := strings.Cut(uri, "://")
	if !found || schemePart == "" {
		return types.Config{}, &types.MalformedURLError{Reason: "URL has no scheme"}
	}
	scheme := strings.ToLower(schemePart)
	if !slices.Contains(supportedSchemes, scheme) {
		return types.Config{}, &types.UnsupportedSchemeError{Scheme: scheme}
	}

	pathPart, queryPart, _ := strings.Cut(rest, "?")
	options, err := base.ParseOptions(queryPart)
	if err != nil {
		return types.Config{}, err
	}

	path, err := url.PathUnescape(pathPart)
	if err != nil {
		return types.Config{}, &types.MalformedURLError{Reason: "invalid path encoding", Err: err}
	}

	// in-memory forms: sqlite://, sqlite://:memory:, sqlite:///:memory:
	switch path {
	case "", ":memory:", "/:memory:":
		path = ":memory:"
	}

	config := types.Config{
		Engine:   types.EngineSQLite,
		Database: path,
		Options:  options,
	}
	if scheme != types.EngineSQLite.String() {
		config.Scheme = scheme
	}
	return config, nil
}

// FormatDSN renders the path for github.com/mattn/go-sqlite3. Options force
// the file: URI form, which the driver needs for query parameters
func (p *SQLiteURIParser) FormatDSN(config types.Config) (string, error) {
	if config.Engine != types.EngineSQLite {
		return "", fmt.Errorf("config engine %s is not sqlite", config.Engine)
	}
	if config.Database == "" {
		return "", fmt.Errorf("sqlite config has no database path")
	}

	if len(config.Options) == 0 {
		return config.Database, nil
	}

	values := make(url.Values, len(config.Options))
	for k, v := range config.Options {
		values.Set(k, v)
	}
	return "file:" + config.Database + "?" + values.Encode(), nil
}

// FormatURL renders the canonical URL form
func (p *SQLiteURIParser) FormatURL(config types.Config) (string, error) {
	return config.URL(), nil
}

// GetSupportedSchemes returns the URI schemes this parser supports
func (p *SQLiteURIParser) GetSupportedSchemes() []string {
	return slices.Clone(supportedSchemes)
}

// GetEngine returns the engine this parser is for
func (p *SQLiteURIParser) GetEngine() types.Engine {
	return types.EngineSQLite
}

// GetDefaultPort returns 0; SQLite has no network port
func (p *SQLiteURIParser) GetDefaultPort() int {
	return 0
}
