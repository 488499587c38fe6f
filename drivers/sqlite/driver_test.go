package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldtlabs/dburl/types"
)

func TestOpenInMemory(t *testing.T) {
	db, err := Open(types.Config{
		Engine:   types.EngineSQLite,
		Database: ":memory:",
	})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Ping())

	_, err = db.Exec("CREATE TABLE settings (key TEXT PRIMARY KEY, value TEXT)")
	require.NoError(t, err)

	_, err = db.Exec("INSERT INTO settings (key, value) VALUES (?, ?)", "env", "test")
	require.NoError(t, err)

	var value string
	err = db.QueryRow("SELECT value FROM settings WHERE key = ?", "env").Scan(&value)
	require.NoError(t, err)
	assert.Equal(t, "test", value)
}

func TestOpenSharedCache(t *testing.T) {
	db, err := Open(types.Config{
		Engine:   types.EngineSQLite,
		Database: ":memory:",
		Options:  map[string]string{"cache": "shared"},
	})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Ping())
}

func TestOpenRejectsWrongEngine(t *testing.T) {
	_, err := Open(types.Config{
		Engine:   types.EnginePostgreSQL,
		Database: "app",
	})
	require.Error(t, err)
}
