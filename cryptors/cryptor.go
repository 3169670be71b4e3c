// Package cryptors holds the pieces shared by every cipher in this module:
// the session alphabet and the modular index arithmetic built on top of it.
//
// All components of a cipher session must reference the identical Alphabet
// value.  Every mapping (rotor wiring, reflector, plugboard) is defined over
// the alphabet's index space, so mixing alphabets between components corrupts
// the result silently.
package cryptors

import (
	"fmt"
	"strings"
	"unicode"
)

// Latin is the default session alphabet, the historical 26-letter set.
const Latin = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Alphabet is an ordered, fixed set of unique symbols.  It is immutable after
// construction and safe to share between components.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet builds an Alphabet from the given symbol sequence.  The
// sequence must be non-empty and free of duplicate symbols.
func NewAlphabet(symbols string) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("alphabet: %w", ErrEmptyAlphabet)
	}
	a := &Alphabet{
		symbols: []rune(symbols),
		index:   make(map[rune]int, len(symbols)),
	}
	for i, r := range a.symbols {
		if _, dup := a.index[r]; dup {
			return nil, fmt.Errorf("alphabet: symbol %q: %w", r, ErrDuplicateSymbol)
		}
		a.index[r] = i
	}
	return a, nil
}

// Len returns the number of symbols in the alphabet.
func (a *Alphabet) Len() int { return len(a.symbols) }

// String returns the alphabet's symbols in order.
func (a *Alphabet) String() string { return string(a.symbols) }

// Index returns the position of symbol r, or false if r is not in the
// alphabet.
func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// At returns the symbol at position i.  It panics if i is out of range, like
// a slice index.
func (a *Alphabet) At(i int) rune { return a.symbols[i] }

// Contains reports whether r is a symbol of the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// Shift moves symbol r by the given offset around the alphabet, wrapping in
// both directions.  Symbols outside the alphabet are returned unchanged.
func (a *Alphabet) Shift(r rune, offset int) rune {
	i, ok := a.index[r]
	if !ok {
		return r
	}
	l := len(a.symbols)
	return a.symbols[((i+offset)%l+l)%l]
}

// Normalize uppercases text and drops every rune whose uppercase form is not
// in the alphabet.  This is the only text cleaning the ciphers rely on.
func (a *Alphabet) Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		u := unicode.ToUpper(r)
		if a.Contains(u) {
			b.WriteRune(u)
		}
	}
	return b.String()
}
