// Package rotor implements the stepping substitution unit of the rotor
// machine: a wiring table of shift offsets plus a position cursor.
package rotor

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/veilworks/cipher/cryptors"
)

// Rotor is a single stepping substitution unit.  The wiring is a permutation
// of the offsets 1..L-1 for an alphabet of length L; at stepping position
// cursor the rotor contributes the offset wiring[cursor].  The wiring never
// changes after construction; only the machine mutates the cursor, via Step.
type Rotor struct {
	wiring []int
	cursor int
}

// Generate creates a rotor with freshly generated key material: a uniformly
// random permutation of the offsets 1..alphabetLen-1 (a zero offset would be
// a no-op wire and is excluded by construction) and a uniformly random
// starting cursor.
func Generate(alphabetLen int, rnd *rand.Rand) *Rotor {
	wiring := rnd.Perm(alphabetLen - 1)
	for i := range wiring {
		wiring[i]++
	}
	return &Rotor{
		wiring: wiring,
		cursor: rnd.IntN(len(wiring)),
	}
}

// Load builds a rotor from persisted key material.
//
// An out-of-range cursor is fatal.  Wiring anomalies (wrong length for the
// alphabet, duplicate offsets) are logged at Warn but accepted, preserving
// the permissiveness of prior runs; the plugboard, by contrast, rejects its
// anomalies hard because a non-involutive plugboard breaks the machine's
// encrypt/decrypt symmetry.
func Load(alphabetLen int, wiring []int, cursor int, logger *slog.Logger) (*Rotor, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if len(wiring) != alphabetLen-1 {
		logger.Warn("unexpected wiring length",
			"want", alphabetLen-1, "got", len(wiring))
	}
	seen := make(map[int]bool, len(wiring))
	for _, offset := range wiring {
		if seen[offset] {
			logger.Warn("duplicate offset in wiring", "offset", offset)
		}
		seen[offset] = true
	}
	if cursor < 0 || cursor >= len(wiring) {
		return nil, fmt.Errorf("cursor %d with wiring length %d: %w",
			cursor, len(wiring), cryptors.ErrInvalidCursor)
	}
	return &Rotor{
		wiring: append([]int(nil), wiring...),
		cursor: cursor,
	}, nil
}

// Offset returns the shift offset at the current cursor position.
func (r *Rotor) Offset() int { return r.wiring[r.cursor] }

// Cursor returns the current cursor position.
func (r *Rotor) Cursor() int { return r.cursor }

// Wiring returns a copy of the wiring table.
func (r *Rotor) Wiring() []int {
	return append([]int(nil), r.wiring...)
}

// Step advances the cursor by one position and reports whether it wrapped
// back to zero, i.e. completed a full revolution.  The wrap signal drives the
// machine's carry into the next rotor.
func (r *Rotor) Step() bool {
	r.cursor = (r.cursor + 1) % len(r.wiring)
	return r.cursor == 0
}
