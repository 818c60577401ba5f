package model

import "errors"

var (
	// ErrMalformedInput marks a source line that does not match its
	// keyword's field grammar, or an out-of-domain enum token.
	ErrMalformedInput = errors.New("malformed input")

	// ErrUnresolvedSymbol marks an instance whose symbol definition was
	// not supplied.
	ErrUnresolvedSymbol = errors.New("unresolved symbol")

	// ErrEmptyDocument is returned when there is no geometry to bound.
	ErrEmptyDocument = errors.New("empty document")
)
