package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldtlabs/dburl/types"
)

func TestOpenSQLiteInMemory(t *testing.T) {
	config, err := Parse("sqlite://:memory:")
	require.NoError(t, err)
	config.ConnHealthChecks = true
	config.ConnMaxAge = time.Minute

	db, err := Open(context.Background(), config)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec("CREATE TABLE settings (key TEXT PRIMARY KEY, value TEXT)")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO settings (key, value) VALUES (?, ?)", "environment", "test")
	require.NoError(t, err)

	var value string
	err = db.QueryRow("SELECT value FROM settings WHERE key = ?", "environment").Scan(&value)
	require.NoError(t, err)
	assert.Equal(t, "test", value)
}

func TestOpenSQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")

	db, err := OpenURL(context.Background(), "sqlite://"+path, types.ResolveOptions{
		ConnHealthChecks: true,
	})
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec("CREATE TABLE notes (body TEXT)")
	require.NoError(t, err)

	assert.FileExists(t, path)
}

func TestOpenURLBadURL(t *testing.T) {
	_, err := OpenURL(context.Background(), "duckdb://localhost/mydb", types.ResolveOptions{})

	var schemeErr *types.UnsupportedSchemeError
	require.ErrorAs(t, err, &schemeErr)
}

func TestOpenEngineWithoutDriver(t *testing.T) {
	// mongodb registers a parser but no database/sql factory
	config, err := Parse("mongodb://localhost:27017/mydb")
	require.NoError(t, err)

	_, err = Open(context.Background(), config)
	require.Error(t, err)
}

func TestOpenUnknownEngine(t *testing.T) {
	_, err := Open(context.Background(), types.Config{Engine: types.Engine("duckdb")})
	require.Error(t, err)
}
