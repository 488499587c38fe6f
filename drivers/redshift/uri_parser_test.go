package redshift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldtlabs/dburl/types"
)

func TestRedshiftURIParser_ParseURI(t *testing.T) {
	parser := NewRedshiftURIParser()

	config, err := parser.ParseURI("redshift://analyst:pw@cluster.abc123.us-east-1.redshift.amazonaws.com:5439/warehouse")
	require.NoError(t, err)

	assert.Equal(t, types.Config{
		Engine:   types.EngineRedshift,
		Host:     "cluster.abc123.us-east-1.redshift.amazonaws.com",
		Port:     5439,
		Database: "warehouse",
		User:     "analyst",
		Password: "pw",
	}, config)

	_, err = parser.ParseURI("postgresql://localhost/db")
	require.Error(t, err)
	var unsupported *types.UnsupportedSchemeError
	require.ErrorAs(t, err, &unsupported)
}

func TestRedshiftURIParser_FormatDSN(t *testing.T) {
	parser := NewRedshiftURIParser()

	dsn, err := parser.FormatDSN(types.Config{
		Engine:   types.EngineRedshift,
		Host:     "cluster.example.com",
		Database: "warehouse",
		User:     "analyst",
	})
	require.NoError(t, err)
	assert.Equal(t, "host=cluster.example.com port=5439 dbname=warehouse user=analyst", dsn)

	_, err = parser.FormatDSN(types.Config{Engine: types.EnginePostgreSQL})
	require.Error(t, err)
}
