package types

import (
	"testing"
)

func TestEngine_FileBased(t *testing.T) {
	tests := []struct {
		engine Engine
		want   bool
	}{
		{EngineSQLite, true},
		{EnginePostgreSQL, false},
		{EngineMySQL, false},
		{EngineMongoDB, false},
		{EngineOracle, false},
		{EngineRedshift, false},
		{EngineCockroachDB, false},
	}

	for _, tt := range tests {
		if got := tt.engine.FileBased(); got != tt.want {
			t.Errorf("%s.FileBased() = %v, want %v", tt.engine, got, tt.want)
		}
	}
}

func TestParseEngine(t *testing.T) {
	engine, err := ParseEngine("postgresql")
	if err != nil {
		t.Fatalf("ParseEngine() error = %v", err)
	}
	if engine != EnginePostgreSQL {
		t.Errorf("ParseEngine() = %v, want %v", engine, EnginePostgreSQL)
	}

	// custom engines are allowed for extensibility
	engine, err = ParseEngine("duckdb")
	if err != nil {
		t.Fatalf("ParseEngine() error = %v", err)
	}
	if engine.String() != "duckdb" {
		t.Errorf("ParseEngine() = %v, want duckdb", engine)
	}

	if _, err := ParseEngine(""); err == nil {
		t.Error("ParseEngine(\"\") expected error, got nil")
	}
}
