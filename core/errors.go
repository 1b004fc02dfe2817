package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for structural faults in the pair stream. All of them
// abort a load or save; callers match with errors.Is.
var (
	// ErrUnexpectedEndOfInput indicates the stream ended while a required
	// marker or value was still expected.
	ErrUnexpectedEndOfInput = errors.New("dxf: unexpected end of input")

	// ErrUnexpectedCodePair indicates a pair violated a structural
	// expectation (wrong marker, wrong place).
	ErrUnexpectedCodePair = errors.New("dxf: unexpected code pair")

	// ErrUnexpectedCode indicates a pair's code is not legal in the
	// current context (e.g. inside the thumbnail section).
	ErrUnexpectedCode = errors.New("dxf: unexpected code")

	// ErrInvalidValue indicates a value could not be parsed or did not
	// have the type its group code implies.
	ErrInvalidValue = errors.New("dxf: invalid value")
)

// PairError wraps ErrUnexpectedCodePair with the offending pair and a
// human-readable expectation, e.g. "expected 0/SECTION or 0/EOF".
func PairError(pair CodePair, expected string) error {
	if expected == "" {
		return fmt.Errorf("%w: got %s", ErrUnexpectedCodePair, pair)
	}
	return fmt.Errorf("%w: got %s, %s", ErrUnexpectedCodePair, pair, expected)
}

// CodeError wraps ErrUnexpectedCode with the offending group code.
func CodeError(code int) error {
	return fmt.Errorf("%w: %d", ErrUnexpectedCode, code)
}

func valueTypeError(pair CodePair, want ValueType) error {
	return fmt.Errorf("%w: %s is not a %s", ErrInvalidValue, pair, want)
}
