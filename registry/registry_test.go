package registry

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/veldtlabs/dburl/types"
)

// Clear registries for testing
func clearRegistries() {
	mu.Lock()
	defer mu.Unlock()
	drivers = make(map[types.Engine]DriverFactory)
	uriParsers = make(map[types.Engine]types.URIParser)
	schemes = make(map[string]types.Engine)
}

// Mock URIParser implementation
type mockURIParser struct {
	supportedSchemes []string
	engine           types.Engine
	parseFunc        func(uri string) (types.Config, error)
}

func (m *mockURIParser) ParseURI(uri string) (types.Config, error) {
	if m.parseFunc != nil {
		return m.parseFunc(uri)
	}
	return types.Config{}, fmt.Errorf("not supported")
}

func (m *mockURIParser) FormatDSN(config types.Config) (string, error) {
	return config.URL(), nil
}

func (m *mockURIParser) FormatURL(config types.Config) (string, error) {
	return config.URL(), nil
}

func (m *mockURIParser) GetSupportedSchemes() []string {
	return m.supportedSchemes
}

func (m *mockURIParser) GetEngine() types.Engine {
	return m.engine
}

func (m *mockURIParser) GetDefaultPort() int {
	return 0
}

func TestRegister(t *testing.T) {
	clearRegistries()

	tests := []struct {
		name        string
		engine      types.Engine
		factory     DriverFactory
		shouldPanic bool
	}{
		{
			name:   "register new driver",
			engine: "testdb",
			factory: func(config types.Config) (*sql.DB, error) {
				return nil, nil
			},
			shouldPanic: false,
		},
		{
			name:   "register duplicate driver",
			engine: "duplicate",
			factory: func(config types.Config) (*sql.DB, error) {
				return nil, nil
			},
			shouldPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shouldPanic {
				// First register the driver
				Register(tt.engine, tt.factory)

				// Then test panic on duplicate
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("Register() should panic for duplicate driver")
					}
				}()
			}

			Register(tt.engine, tt.factory)

			if !tt.shouldPanic {
				// Verify registration
				factory, err := Get(tt.engine)
				if err != nil {
					t.Errorf("Get() error = %v", err)
				}
				if factory == nil {
					t.Error("Get() returned nil factory")
				}
			}
		})
	}
}

func TestGet(t *testing.T) {
	clearRegistries()

	// Register a test driver
	testFactory := func(config types.Config) (*sql.DB, error) {
		return nil, nil
	}
	Register("gettest", testFactory)

	tests := []struct {
		name    string
		engine  types.Engine
		wantErr bool
	}{
		{
			name:    "get existing driver",
			engine:  "gettest",
			wantErr: false,
		},
		{
			name:    "get non-existing driver",
			engine:  "nonexistent",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory, err := Get(tt.engine)
			if (err != nil) != tt.wantErr {
				t.Errorf("Get() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && factory == nil {
				t.Error("Get() returned nil factory for existing driver")
			}
		})
	}
}

func TestRegisterURIParser(t *testing.T) {
	clearRegistries()

	tests := []struct {
		name        string
		engine      types.Engine
		parser      types.URIParser
		shouldPanic bool
	}{
		{
			name:   "register new parser",
			engine: "testparser",
			parser: &mockURIParser{
				engine:           "testparser",
				supportedSchemes: []string{"test"},
			},
			shouldPanic: false,
		},
		{
			name:   "register duplicate parser",
			engine: "dupparser",
			parser: &mockURIParser{
				engine:           "dupparser",
				supportedSchemes: []string{"dup"},
			},
			shouldPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shouldPanic {
				// First register the parser
				RegisterURIParser(tt.engine, tt.parser)

				// Then test panic on duplicate
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("RegisterURIParser() should panic for duplicate parser")
					}
				}()
			}

			RegisterURIParser(tt.engine, tt.parser)

			if !tt.shouldPanic {
				// Verify registration
				parser, err := GetURIParser(tt.engine)
				if err != nil {
					t.Errorf("GetURIParser() error = %v", err)
				}
				if parser == nil {
					t.Error("GetURIParser() returned nil")
				}
			}
		})
	}
}

func TestRegisterURIParserSchemeConflict(t *testing.T) {
	clearRegistries()

	RegisterURIParser("first", &mockURIParser{
		engine:           "first",
		supportedSchemes: []string{"shared"},
	})

	defer func() {
		if r := recover(); r == nil {
			t.Error("RegisterURIParser() should panic when a scheme is already claimed")
		}
	}()

	RegisterURIParser("second", &mockURIParser{
		engine:           "second",
		supportedSchemes: []string{"shared"},
	})
}

func TestGetURIParser(t *testing.T) {
	clearRegistries()

	// Register a test parser
	testParser := &mockURIParser{
		engine:           "parsertest",
		supportedSchemes: []string{"ptest"},
	}
	RegisterURIParser("parsertest", testParser)

	tests := []struct {
		name    string
		engine  types.Engine
		wantErr bool
	}{
		{
			name:    "get existing parser",
			engine:  "parsertest",
			wantErr: false,
		},
		{
			name:    "get non-existing parser",
			engine:  "nonexistent",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser, err := GetURIParser(tt.engine)
			if (err != nil) != tt.wantErr {
				t.Errorf("GetURIParser() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && parser == nil {
				t.Error("GetURIParser() returned nil for existing parser")
			}
		})
	}
}

func TestGetAllURIParsers(t *testing.T) {
	clearRegistries()

	parser1 := &mockURIParser{
		engine:           "type1",
		supportedSchemes: []string{"type1"},
	}
	parser2 := &mockURIParser{
		engine:           "type2",
		supportedSchemes: []string{"type2"},
	}

	RegisterURIParser("type1", parser1)
	RegisterURIParser("type2", parser2)

	parsers := GetAllURIParsers()

	if len(parsers) != 2 {
		t.Errorf("GetAllURIParsers() returned %d parsers, want 2", len(parsers))
	}

	// Verify both parsers are present
	if _, ok := parsers["type1"]; !ok {
		t.Error("GetAllURIParsers() missing type1 parser")
	}
	if _, ok := parsers["type2"]; !ok {
		t.Error("GetAllURIParsers() missing type2 parser")
	}
}

func TestGetAllSchemes(t *testing.T) {
	clearRegistries()

	RegisterURIParser("pg", &mockURIParser{
		engine:           "pg",
		supportedSchemes: []string{"pg", "PGX"},
	})

	all := GetAllSchemes()
	if len(all) != 2 {
		t.Errorf("GetAllSchemes() returned %d schemes, want 2", len(all))
	}
	// schemes are indexed lowercase
	if all["pgx"] != "pg" {
		t.Errorf("GetAllSchemes()[pgx] = %v, want pg", all["pgx"])
	}
}

func TestParseURI(t *testing.T) {
	clearRegistries()

	// Parser that accepts URIs starting with "valid://"
	validParser := &mockURIParser{
		engine:           "valid",
		supportedSchemes: []string{"valid"},
		parseFunc: func(uri string) (types.Config, error) {
			rest, ok := strings.CutPrefix(uri, "valid://")
			if !ok {
				return types.Config{}, fmt.Errorf("not a valid URI")
			}
			return types.Config{
				Engine: "valid",
				Host:   rest,
			}, nil
		},
	}

	// Parser that accepts URIs starting with "test://"
	testParser := &mockURIParser{
		engine:           "test",
		supportedSchemes: []string{"test"},
		parseFunc: func(uri string) (types.Config, error) {
			rest, ok := strings.CutPrefix(uri, "test://")
			if !ok {
				return types.Config{}, fmt.Errorf("not a test URI")
			}
			return types.Config{
				Engine: "test",
				Host:   rest,
			}, nil
		},
	}

	RegisterURIParser("valid", validParser)
	RegisterURIParser("test", testParser)

	tests := []struct {
		name       string
		uri        string
		wantEngine types.Engine
		wantHost   string
		wantErr    bool
	}{
		{
			name:       "scheme dispatch to first parser",
			uri:        "valid://localhost:5432",
			wantEngine: "valid",
			wantHost:   "localhost:5432",
			wantErr:    false,
		},
		{
			name:       "scheme dispatch to second parser",
			uri:        "test://example.com",
			wantEngine: "test",
			wantHost:   "example.com",
			wantErr:    false,
		},
		{
			name:    "unclaimed scheme",
			uri:     "invalid://something",
			wantErr: true,
		},
		{
			name:    "empty URI",
			uri:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := ParseURI(tt.uri)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseURI() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				return
			}

			if config.Engine != tt.wantEngine {
				t.Errorf("ParseURI() Engine = %v, want %v", config.Engine, tt.wantEngine)
			}

			if config.Host != tt.wantHost {
				t.Errorf("ParseURI() Host = %v, want %v", config.Host, tt.wantHost)
			}
		})
	}
}

func TestParseURIErrorKinds(t *testing.T) {
	clearRegistries()

	RegisterURIParser("known", &mockURIParser{
		engine:           "known",
		supportedSchemes: []string{"known"},
	})

	var malformed *types.MalformedURLError
	_, err := ParseURI("no-scheme-here")
	if !errors.As(err, &malformed) {
		t.Errorf("ParseURI() error = %v, want MalformedURLError", err)
	}

	var unsupported *types.UnsupportedSchemeError
	_, err = ParseURI("ftp://example.com")
	if !errors.As(err, &unsupported) {
		t.Errorf("ParseURI() error = %v, want UnsupportedSchemeError", err)
	}
	if unsupported.Scheme != "ftp" {
		t.Errorf("UnsupportedSchemeError.Scheme = %q, want ftp", unsupported.Scheme)
	}

	// Scheme lookup is case-insensitive
	if _, err := ParseURI("KNOWN://x"); err != nil {
		var u *types.UnsupportedSchemeError
		if errors.As(err, &u) {
			t.Errorf("ParseURI() uppercase scheme should dispatch, got %v", err)
		}
	}
}

func TestParseURINoParserRegistered(t *testing.T) {
	clearRegistries()

	// No parsers registered
	_, err := ParseURI("test://something")
	if err == nil {
		t.Error("ParseURI() should return error when no parsers registered")
	}
	if err.Error() != "no URI parsers registered" {
		t.Errorf("ParseURI() error = %v, want 'no URI parsers registered'", err)
	}
}

func TestConcurrentAccess(t *testing.T) {
	clearRegistries()

	// Test concurrent driver registration and retrieval
	var wg sync.WaitGroup
	numGoroutines := 10

	// Start multiple goroutines registering different drivers
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			engine := types.Engine(fmt.Sprintf("driver%d", id))
			factory := func(config types.Config) (*sql.DB, error) {
				return nil, nil
			}
			Register(engine, factory)
		}(i)
	}

	// Start multiple goroutines reading drivers
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			engine := types.Engine(fmt.Sprintf("driver%d", id))
			// Try to get a driver that may or may not be registered yet
			Get(engine)
		}(i)
	}

	wg.Wait()

	// All drivers should be registered afterwards
	for i := 0; i < numGoroutines; i++ {
		engine := types.Engine(fmt.Sprintf("driver%d", i))
		if _, err := Get(engine); err != nil {
			t.Errorf("Get(%s) after concurrent registration: %v", engine, err)
		}
	}
}
