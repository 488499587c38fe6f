package types

import "fmt"

// Engine identifies a database engine family
// It's defined as a string to allow extensibility for new engines
type Engine string

// Well-known engines (for convenience and documentation)
const (
	EnginePostgreSQL  Engine = "postgresql"
	EngineMySQL       Engine = "mysql"
	EngineSQLite      Engine = "sqlite"
	EngineMongoDB     Engine = "mongodb"
	EngineOracle      Engine = "oracle"
	EngineRedshift    Engine = "redshift"
	EngineCockroachDB Engine = "cockroachdb"
)

// String returns the string representation of the engine
func (e Engine) String() string {
	return string(e)
}

// FileBased reports whether the engine opens a local file instead of a
// network endpoint
func (e Engine) FileBased() bool {
	return e == EngineSQLite
}

// ParseEngine parses a string into an Engine
// This is primarily used for parsing configuration values
func ParseEngine(s string) (Engine, error) {
	// Allow any string as an engine for extensibility
	if s == "" {
		return "", fmt.Errorf("engine cannot be empty")
	}
	return Engine(s), nil
}
