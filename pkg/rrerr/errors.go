// Package rrerr defines the error kinds from spec §7: ConfigError, IOError,
// ParseError, GeometryError. Each wraps an underlying error via stdlib
// errors/fmt.Errorf, the same idiom the teacher uses throughout
// pkg/loaders and pkg/scene — no error-handling library appears anywhere
// in the retrieved example pack.
package rrerr

import "errors"

// Kind classifies an error for callers that want to branch on it (e.g. the
// CLI's exit-code selection).
type Kind int

const (
	KindConfig Kind = iota
	KindIO
	KindParse
	KindGeometry
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindIO:
		return "io"
	case KindParse:
		return "parse"
	case KindGeometry:
		return "geometry"
	default:
		return "unknown"
	}
}

// Error is a kinded, wrapped error.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Kind.String() + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// Config wraps err as a ConfigError: malformed scene (unknown type,
// missing required field, wrong arity in vectors).
func Config(err error) error { return &Error{Kind: KindConfig, Err: err} }

// IO wraps err as an IOError: a scene, OBJ, texture, or output file could
// not be read or written.
func IO(err error) error { return &Error{Kind: KindIO, Err: err} }

// Parse wraps err as a ParseError: YAML/JSON/OBJ syntax is invalid.
func Parse(err error) error { return &Error{Kind: KindParse, Err: err} }

// Geometry wraps err as a GeometryError: a singular transform matrix, a
// zero-length vector passed to normalize, or a degenerate triangle edge.
func Geometry(err error) error { return &Error{Kind: KindGeometry, Err: err} }

// Is reports whether the first *Error found in err's chain (err itself or
// an error it wraps) has the given kind. Kinded errors nested inside that
// first *Error are not consulted.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
