package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldtlabs/dburl/types"
)

func TestSQLiteURIParser_ParseURI(t *testing.T) {
	parser := NewSQLiteURIParser()

	testCases := []struct {
		name        string
		uri         string
		expected    types.Config
		expectError bool
	}{
		{
			name: "absolute path",
			uri:  "sqlite:///var/data/app.db",
			expected: types.Config{
				Engine:   types.EngineSQLite,
				Database: "/var/data/app.db",
			},
		},
		{
			name: "relative path",
			uri:  "sqlite://db.sqlite3",
			expected: types.Config{
				Engine:   types.EngineSQLite,
				Database: "db.sqlite3",
			},
		},
		{
			name: "relative path with directories",
			uri:  "sqlite://data/app.db",
			expected: types.Config{
				Engine:   types.EngineSQLite,
				Database: "data/app.db",
			},
		},
		{
			name: "in-memory",
			uri:  "sqlite://:memory:",
			expected: types.Config{
				Engine:   types.EngineSQLite,
				Database: ":memory:",
			},
		},
		{
			name: "in-memory with three slashes",
			uri:  "sqlite:///:memory:",
			expected: types.Config{
				Engine:   types.EngineSQLite,
				Database: ":memory:",
			},
		},
		{
			name: "empty path means in-memory",
			uri:  "sqlite://",
			expected: types.Config{
				Engine:   types.EngineSQLite,
				Database: ":memory:",
			},
		},
		{
			name: "sqlite3 alias",
			uri:  "sqlite3:///var/data/app.db",
			expected: types.Config{
				Engine:   types.EngineSQLite,
				Scheme:   "sqlite3",
				Database: "/var/data/app.db",
			},
		},
		{
			name: "path with options",
			uri:  "sqlite:///var/data/app.db?mode=ro&cache=shared",
			expected: types.Config{
				Engine:   types.EngineSQLite,
				Database: "/var/data/app.db",
				Options:  map[string]string{"mode": "ro", "cache": "shared"},
			},
		},
		{
			name: "percent-encoded path",
			uri:  "sqlite:///var/data/app%20prod.db",
			expected: types.Config{
				Engine:   types.EngineSQLite,
				Database: "/var/data/app prod.db",
			},
		},
		{
			name:        "missing scheme",
			uri:         "/var/data/app.db",
			expectError: true,
		},
		{
			name:        "wrong scheme",
			uri:         "mysql://localhost/app",
			expectError: true,
		},
		{
			name:        "bad percent encoding",
			uri:         "sqlite:///var/%zz.db",
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config, err := parser.ParseURI(tc.uri)

			if tc.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, config)
		})
	}
}

func TestSQLiteURIParser_FormatDSN(t *testing.T) {
	parser := NewSQLiteURIParser()

	testCases := []struct {
		name        string
		config      types.Config
		expectedDSN string
		expectError bool
	}{
		{
			name: "plain path",
			config: types.Config{
				Engine:   types.EngineSQLite,
				Database: "/var/data/app.db",
			},
			expectedDSN: "/var/data/app.db",
		},
		{
			name: "in-memory",
			config: types.Config{
				Engine:   types.EngineSQLite,
				Database: ":memory:",
			},
			expectedDSN: ":memory:",
		},
		{
			name: "options force the file form",
			config: types.Config{
				Engine:   types.EngineSQLite,
				Database: "/var/data/app.db",
				Options:  map[string]string{"mode": "ro", "cache": "shared"},
			},
			expectedDSN: "file:/var/data/app.db?cache=shared&mode=ro",
		},
		{
			name: "empty path rejected",
			config: types.Config{
				Engine: types.EngineSQLite,
			},
			expectError: true,
		},
		{
			name: "wrong engine rejected",
			config: types.Config{
				Engine:   types.EngineMySQL,
				Database: "/var/data/app.db",
			},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dsn, err := parser.FormatDSN(tc.config)

			if tc.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedDSN, dsn)
		})
	}
}

func TestSQLiteURIParser_RoundTrip(t *testing.T) {
	parser := NewSQLiteURIParser()

	uris := []string{
		"sqlite:///var/data/app.db",
		"sqlite://db.sqlite3",
		"sqlite://:memory:",
		"sqlite:///var/data/app.db?mode=ro",
	}

	for _, uri := range uris {
		t.Run(uri, func(t *testing.T) {
			config, err := parser.ParseURI(uri)
			require.NoError(t, err)

			formatted, err := parser.FormatURL(config)
			require.NoError(t, err)
			assert.Equal(t, uri, formatted)

			reparsed, err := parser.ParseURI(formatted)
			require.NoError(t, err)
			assert.Equal(t, config, reparsed)
		})
	}
}
