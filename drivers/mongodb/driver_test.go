package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veldtlabs/dburl/types"
)

func TestConnectRejectsWrongEngine(t *testing.T) {
	_, err := Connect(context.Background(), types.Config{
		Engine: types.EnginePostgreSQL,
		Host:   "localhost",
	})
	require.Error(t, err)
}
