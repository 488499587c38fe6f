package types

import (
	"errors"
	"fmt"
)

// ErrMissingSource is returned when no connection URL can be found: the
// environment variable is unset (or empty) and no default was supplied
var ErrMissingSource = errors.New("no database URL: environment variable is not set and no default was given")

// UnsupportedSchemeError is returned when a URL carries a scheme no
// registered driver claims
type UnsupportedSchemeError struct {
	Scheme string
}

func (e *UnsupportedSchemeError) Error() string {
	return fmt.Sprintf("unsupported database scheme %q", e.Scheme)
}

// MalformedURLError is returned when a URL cannot be decomposed into
// connection parameters. Err holds the underlying parse error, if any
type MalformedURLError struct {
	Reason string
	Err    error
}

func (e *MalformedURLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed database URL: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed database URL: %s", e.Reason)
}

func (e *MalformedURLError) Unwrap() error {
	return e.Err
}
