package registry

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/veldtlabs/dburl/types"
)

// DriverFactory is a function that opens a database handle for a parsed config
type DriverFactory func(config types.Config) (*sql.DB, error)

// Registries for driver factories and URI parsers, keyed by engine. The
// scheme index maps lowercase URL schemes to the engine that claimed them
var (
	drivers    = make(map[types.Engine]DriverFactory)
	uriParsers = make(map[types.Engine]types.URIParser)
	schemes    = make(map[string]types.Engine)
	mu         sync.RWMutex
)

// Register registers a database driver factory
func Register(engine types.Engine, factory DriverFactory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := drivers[engine]; exists {
		panic(fmt.Sprintf("driver %s already registered", engine))
	}

	drivers[engine] = factory
}

// Get retrieves a registered driver factory
func Get(engine types.Engine) (DriverFactory, error) {
	mu.RLock()
	defer mu.RUnlock()

	factory, exists := drivers[engine]
	if !exists {
		return nil, fmt.Errorf("driver %s not registered", engine)
	}

	return factory, nil
}

// RegisterURIParser registers a URI parser and claims its schemes
func RegisterURIParser(engine types.Engine, parser types.URIParser) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := uriParsers[engine]; exists {
		panic(fmt.Sprintf("URI parser %s already registered", engine))
	}

	uriParsers[engine] = parser
	for _, scheme := range parser.GetSupportedSchemes() {
		scheme = strings.ToLower(scheme)
		if claimed, exists := schemes[scheme]; exists {
			panic(fmt.Sprintf("scheme %s already claimed by %s", scheme, claimed))
		}
		schemes[scheme] = engine
	}
}

// GetURIParser retrieves a registered URI parser
func GetURIParser(engine types.Engine) (types.URIParser, error) {
	mu.RLock()
	defer mu.RUnlock()

	parser, exists := uriParsers[engine]
	if !exists {
		return nil, fmt.Errorf("URI parser %s not registered", engine)
	}

	return parser, nil
}

// GetAllURIParsers returns a copy of all registered URI parsers
func GetAllURIParsers() map[types.Engine]types.URIParser {
	mu.RLock()
	defer mu.RUnlock()

	parsers := make(map[types.Engine]types.URIParser, len(uriParsers))
	for engine, parser := range uriParsers {
		parsers[engine] = parser
	}
	return parsers
}

// GetAllSchemes returns a copy of the scheme index
func GetAllSchemes() map[string]types.Engine {
	mu.RLock()
	defer mu.RUnlock()

	out := make(map[string]types.Engine, len(schemes))
	for scheme, engine := range schemes {
		out[scheme] = engine
	}
	return out
}

// ParseURI parses a database URI by dispatching on its scheme
func ParseURI(uri string) (types.Config, error) {
	scheme, err := SchemeOf(uri)
	if err != nil {
		return types.Config{}, err
	}

	mu.RLock()
	if len(uriParsers) == 0 {
		mu.RUnlock()
		return types.Config{}, fmt.Errorf("no URI parsers registered")
	}
	engine, ok := schemes[scheme]
	parser := uriParsers[engine]
	mu.RUnlock()

	if !ok {
		return types.Config{}, &types.UnsupportedSchemeError{Scheme: scheme}
	}

	return parser.ParseURI(uri)
}

// SchemeOf extracts the lowercase scheme from a URI. A URI without the
// "scheme://" form is malformed
func SchemeOf(uri string) (string, error) {
	scheme, _, found := strings.Cut(uri, "://")
	if !found || scheme == "" {
		return "", &types.MalformedURLError{Reason: "URL has no scheme"}
	}
	return strings.ToLower(scheme), nil
}
