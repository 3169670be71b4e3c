// Package plugboard implements the user-configured symbol swaps applied
// before and after the rotor passes.
package plugboard

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/veilworks/cipher/cryptors"
)

// Plugboard is a partial involutive mapping over the session alphabet, built
// from human-authored "X - Y" pair lines.  Symbols not wired into a pair pass
// through unchanged.  Immutable after construction.
type Plugboard struct {
	alphabet *cryptors.Alphabet
	table    []int
}

// Build parses pair lines into a plugboard.  Lines are case-insensitive and
// whitespace-tolerant around the "-" separator; blank lines are skipped.
// Malformed lines, symbols outside the alphabet, and reuse of an already
// wired symbol are all hard failures: an ambiguous plugboard would break the
// machine's encrypt/decrypt symmetry.
func Build(alphabet *cryptors.Alphabet, lines []string) (*Plugboard, error) {
	table := make([]int, alphabet.Len())
	for i := range table {
		table[i] = -1
	}
	for n, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		left, right, err := parsePair(alphabet, line)
		if err != nil {
			return nil, fmt.Errorf("plugboard line %d: %w", n+1, err)
		}
		if table[left] >= 0 {
			return nil, fmt.Errorf("plugboard line %d: symbol %q: %w",
				n+1, alphabet.At(left), cryptors.ErrDuplicateKey)
		}
		if table[right] >= 0 {
			return nil, fmt.Errorf("plugboard line %d: symbol %q: %w",
				n+1, alphabet.At(right), cryptors.ErrDuplicateValue)
		}
		table[left] = right
		table[right] = left
	}
	return &Plugboard{alphabet: alphabet, table: table}, nil
}

func parsePair(alphabet *cryptors.Alphabet, line string) (int, int, error) {
	lhs, rhs, found := strings.Cut(line, "-")
	if !found {
		return 0, 0, fmt.Errorf("%q: %w", line, cryptors.ErrBadPair)
	}
	left, err := pairSymbol(alphabet, lhs)
	if err != nil {
		return 0, 0, err
	}
	right, err := pairSymbol(alphabet, rhs)
	if err != nil {
		return 0, 0, err
	}
	return left, right, nil
}

func pairSymbol(alphabet *cryptors.Alphabet, field string) (int, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return 0, fmt.Errorf("empty side: %w", cryptors.ErrBadPair)
	}
	r := unicode.ToUpper([]rune(field)[0])
	i, ok := alphabet.Index(r)
	if !ok {
		return 0, fmt.Errorf("symbol %q: %w", r, cryptors.ErrNotInAlphabet)
	}
	return i, nil
}

// Apply returns the partner of symbol c, or c itself if it is not wired.
func (p *Plugboard) Apply(c rune) rune {
	i, ok := p.alphabet.Index(c)
	if !ok || p.table[i] < 0 {
		return c
	}
	return p.alphabet.At(p.table[i])
}

// PairCount returns the number of wired pairs.
func (p *Plugboard) PairCount() int {
	n := 0
	for i, j := range p.table {
		if j > i {
			n++
		}
	}
	return n
}
