// Package fault defines the single tagged error type shared by the encoder,
// compiler, players and configuration layers.
//
// Every error carries a Kind. Sentinel values exist for each Kind so callers
// classify with errors.Is, regardless of the payload carried:
//
//	if errors.Is(err, fault.ErrBadSequence) { ... }
package fault

import (
	"github.com/ezrec/keyer/translate"
)

var f = translate.From

// Kind classifies a fault.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_UNSUPPORTED_CHARACTER = Kind(0) // unsupported character
	KIND_BAD_SEQUENCE          = Kind(1) // bad sequence
	KIND_NO_FUNCTION_DEFINED   = Kind(2) // no function defined
	KIND_INVALID_CONFIGURATION = Kind(3) // invalid configuration
)

// Error is a validation failure with the offending value as payload.
type Error struct {
	Kind   Kind
	Rune   rune    // Offending character, if any.
	Offset int     // Byte offset of Rune in its input, or -1.
	Value  float64 // Offending numeric value, for configuration faults.
	Detail string  // Optional free-form context.
}

var (
	ErrUnsupportedCharacter = &Error{Kind: KIND_UNSUPPORTED_CHARACTER, Offset: -1}
	ErrBadSequence          = &Error{Kind: KIND_BAD_SEQUENCE, Offset: -1}
	ErrNoFunctionDefined    = &Error{Kind: KIND_NO_FUNCTION_DEFINED, Offset: -1}
	ErrInvalidConfiguration = &Error{Kind: KIND_INVALID_CONFIGURATION, Offset: -1}
)

// UnsupportedCharacter returns a fault for a character missing from the symbol table.
func UnsupportedCharacter(r rune) *Error {
	return &Error{Kind: KIND_UNSUPPORTED_CHARACTER, Rune: r, Offset: -1}
}

// BadSequence returns a fault for a rune outside the symbol alphabet.
func BadSequence(r rune, offset int, symbols string) *Error {
	return &Error{Kind: KIND_BAD_SEQUENCE, Rune: r, Offset: offset, Detail: symbols}
}

// NoFunctionDefined returns a fault naming the missing action.
func NoFunctionDefined(action string) *Error {
	return &Error{Kind: KIND_NO_FUNCTION_DEFINED, Offset: -1, Detail: action}
}

// InvalidConfiguration returns a fault for a non-positive rate or unit.
func InvalidConfiguration(what string, value float64) *Error {
	return &Error{Kind: KIND_INVALID_CONFIGURATION, Offset: -1, Value: value, Detail: what}
}

func (err *Error) Error() string {
	switch err.Kind {
	case KIND_UNSUPPORTED_CHARACTER:
		if err.Rune != 0 {
			return f("%v: %q", err.Kind, err.Rune)
		}
	case KIND_BAD_SEQUENCE:
		if err.Offset >= 0 {
			return f("%v: found %q at %d in %q", err.Kind, err.Rune, err.Offset, err.Detail)
		}
	case KIND_NO_FUNCTION_DEFINED:
		if err.Detail != "" {
			return f("%v: %v not defined", err.Kind, err.Detail)
		}
	case KIND_INVALID_CONFIGURATION:
		if err.Detail != "" {
			return f("%v: %v must be greater than 0, received %v", err.Kind, err.Detail, err.Value)
		}
	}

	return f("%v", err.Kind)
}

// Is matches any *Error of the same Kind.
func (err *Error) Is(target error) (ok bool) {
	other, ok := target.(*Error)
	if !ok {
		return
	}
	return other.Kind == err.Kind
}
