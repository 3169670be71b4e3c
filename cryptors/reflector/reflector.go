// Package reflector implements the fixed involutive mapping applied between
// the forward and reverse rotor passes.
package reflector

import (
	"fmt"
	"math/rand/v2"

	"github.com/veilworks/cipher/cryptors"
)

// Reflector is a pairwise mapping over the session alphabet, immutable after
// construction.  A generated reflector is a fixed-point-free involution by
// construction; a loaded one is whatever the key material says it is, with
// unmapped symbols passing through unchanged.
//
// The mapping is an array indexed by alphabet position rather than a map:
// lookups are O(1) without hashing and full coverage is visible as the
// absence of unset entries.
type Reflector struct {
	alphabet *cryptors.Alphabet
	table    []int
}

// Generate creates a reflector by shuffling the alphabet and pairing element
// i with element i+L/2, which yields a fixed-point-free involution over the
// whole alphabet.  Odd-length alphabets cannot be paired and are rejected.
func Generate(alphabet *cryptors.Alphabet, rnd *rand.Rand) (*Reflector, error) {
	l := alphabet.Len()
	if l%2 != 0 {
		return nil, fmt.Errorf("reflector: length %d: %w", l, cryptors.ErrOddAlphabet)
	}
	table := make([]int, l)
	perm := rnd.Perm(l)
	for i := 0; i < l/2; i++ {
		left, right := perm[i], perm[i+l/2]
		table[left] = right
		table[right] = left
	}
	return &Reflector{alphabet: alphabet, table: table}, nil
}

// FromPairs builds a reflector from a loaded symbol-pair mapping.  Symbols
// outside the alphabet are rejected; coverage and symmetry are not enforced,
// Apply falls back to identity for anything unmapped.
func FromPairs(alphabet *cryptors.Alphabet, pairs map[rune]rune) (*Reflector, error) {
	table := make([]int, alphabet.Len())
	for i := range table {
		table[i] = -1
	}
	for from, to := range pairs {
		i, ok := alphabet.Index(from)
		if !ok {
			return nil, fmt.Errorf("reflector: symbol %q: %w", from, cryptors.ErrNotInAlphabet)
		}
		j, ok := alphabet.Index(to)
		if !ok {
			return nil, fmt.Errorf("reflector: symbol %q: %w", to, cryptors.ErrNotInAlphabet)
		}
		table[i] = j
	}
	return &Reflector{alphabet: alphabet, table: table}, nil
}

// Apply returns the partner of symbol c, or c itself if the reflector does
// not map it.  The identity fallback should never trigger for a generated
// reflector, which spans the whole alphabet.
func (r *Reflector) Apply(c rune) rune {
	i, ok := r.alphabet.Index(c)
	if !ok {
		return c
	}
	if r.table[i] < 0 {
		return c
	}
	return r.alphabet.At(r.table[i])
}

// Len returns the number of mapped symbols.
func (r *Reflector) Len() int {
	n := 0
	for _, j := range r.table {
		if j >= 0 {
			n++
		}
	}
	return n
}

// Pairs returns the mapping as symbol pairs, for serialization.
func (r *Reflector) Pairs() map[rune]rune {
	pairs := make(map[rune]rune, len(r.table))
	for i, j := range r.table {
		if j >= 0 {
			pairs[r.alphabet.At(i)] = r.alphabet.At(j)
		}
	}
	return pairs
}
