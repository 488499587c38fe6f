package cockroachdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldtlabs/dburl/types"
)

func TestCockroachDBURIParser_ParseURI(t *testing.T) {
	parser := NewCockroachDBURIParser()

	testCases := []struct {
		name     string
		uri      string
		expected types.Config
	}{
		{
			name: "canonical scheme",
			uri:  "cockroachdb://root@localhost:26257/defaultdb",
			expected: types.Config{
				Engine:   types.EngineCockroachDB,
				Host:     "localhost",
				Port:     26257,
				Database: "defaultdb",
				User:     "root",
			},
		},
		{
			name: "crdb alias with cluster option",
			uri:  "crdb://app@free-tier.gcp-us-central1.cockroachlabs.cloud/defaultdb?options=--cluster%3Dbilly-123",
			expected: types.Config{
				Engine:   types.EngineCockroachDB,
				Scheme:   "crdb",
				Host:     "free-tier.gcp-us-central1.cockroachlabs.cloud",
				Database: "defaultdb",
				User:     "app",
				Options:  map[string]string{"options": "--cluster=billy-123"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config, err := parser.ParseURI(tc.uri)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, config)
		})
	}
}

func TestCockroachDBURIParser_FormatDSN(t *testing.T) {
	parser := NewCockroachDBURIParser()

	dsn, err := parser.FormatDSN(types.Config{
		Engine:   types.EngineCockroachDB,
		Host:     "localhost",
		Database: "defaultdb",
		User:     "root",
	})
	require.NoError(t, err)
	assert.Equal(t, "host=localhost port=26257 dbname=defaultdb user=root", dsn)
}
