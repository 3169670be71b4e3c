package cryptors

import "errors"

// Sentinel errors shared by the cipher components.  Construction failures
// wrap these with component and file context; callers match with errors.Is.
var (
	// ErrEmptyAlphabet reports an alphabet with no symbols.
	ErrEmptyAlphabet = errors.New("alphabet is empty")

	// ErrDuplicateSymbol reports a symbol appearing twice in an alphabet.
	ErrDuplicateSymbol = errors.New("duplicate symbol")

	// ErrOddAlphabet reports an odd-length alphabet, which cannot be paired
	// into a fixed-point-free reflector.
	ErrOddAlphabet = errors.New("alphabet length must be even")

	// ErrNotInAlphabet reports a symbol that is not part of the session
	// alphabet.
	ErrNotInAlphabet = errors.New("symbol not in alphabet")

	// ErrInvalidCursor reports a rotor cursor outside its wiring range.
	ErrInvalidCursor = errors.New("cursor outside wiring range")

	// ErrRotorCount reports persisted rotor material whose cardinality does
	// not match the requested rotor count.
	ErrRotorCount = errors.New("rotor count mismatch")

	// ErrBadPair reports a malformed symbol-pair line.
	ErrBadPair = errors.New("malformed symbol pair")

	// ErrDuplicateKey reports a plugboard symbol already wired as a key.
	ErrDuplicateKey = errors.New("symbol already wired")

	// ErrDuplicateValue reports a plugboard symbol already wired as a value.
	ErrDuplicateValue = errors.New("symbol already wired as a value")

	// ErrEmptyFile reports a key material file with no records.
	ErrEmptyFile = errors.New("empty key material file")

	// ErrUnknownMode reports a key material mode other than generate or load.
	ErrUnknownMode = errors.New("unknown key material mode")
)
