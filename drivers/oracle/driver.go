// Package oracle provides Oracle URL support.
//
// Only the parser is registered; the dependency set carries no Oracle
// database/sql driver, so database.Open reports the engine as not openable.
package oracle

import (
	"github.com/veldtlabs/dburl/registry"
	"github.com/veldtlabs/dburl/types"
)

func init() {
	registry.RegisterURIParser(types.EngineOracle, NewOracleURIParser())
}
