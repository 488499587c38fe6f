package base

import (
	"sort"
	"strconv"
	"strings"

	"github.com/veldtlabs/dburl/types"
)

// KeywordDSN renders a libpq-style keyword/value connection string
// (host=... port=... dbname=...). Empty fields are omitted; the default
// port fills in when the config has none. SSLRequire forces sslmode=require
// over any sslmode option
func KeywordDSN(config types.Config, defaultPort int) string {
	parts := make([]string, 0, 6+len(config.Options))

	appendPart := func(key, value string) {
		parts = append(parts, key+"="+quoteKeywordValue(value))
	}

	if config.Host != "" {
		appendPart("host", config.Host)
	}
	port := config.Port
	if port == 0 {
		port = defaultPort
	}
	if port > 0 {
		parts = append(parts, "port="+strconv.Itoa(port))
	}
	if config.Database != "" {
		appendPart("dbname", config.Database)
	}
	if config.User != "" {
		appendPart("user", config.User)
	}
	if config.Password != "" {
		appendPart("password", config.Password)
	}

	options := config.Options
	if config.SSLRequire {
		merged := make(map[string]string, len(options)+1)
		for k, v := range options {
			merged[k] = v
		}
		merged["sslmode"] = "require"
		options = merged
	}

	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		appendPart(k, options[k])
	}

	return strings.Join(parts, " ")
}

// quoteKeywordValue quotes a value per libpq rules: values containing
// whitespace, quotes or backslashes are wrapped in single quotes with
// internal quotes and backslashes escaped
func quoteKeywordValue(value string) string {
	if value == "" {
		return "''"
	}
	if !strings.ContainsAny(value, " \t\n'\\") {
		return value
	}
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(value)
	return "'" + escaped + "'"
}
