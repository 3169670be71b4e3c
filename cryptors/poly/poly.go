// Package poly implements the running-key (polyalphabetic) substitution
// cipher: the shift at position i is determined by a repeating keyword.
package poly

import (
	"fmt"

	"github.com/veilworks/cipher/cryptors"
)

// Cipher shifts symbol i by key[i mod len(key)], where each key digit is the
// alphabet index of a keyword symbol plus one.
type Cipher struct {
	alphabet *cryptors.Alphabet
	key      []int
}

// New creates a running-key cipher from a keyword.  The keyword is
// normalized against the alphabet first; an empty or entirely foreign
// keyword is rejected.
func New(alphabet *cryptors.Alphabet, keyword string) (*Cipher, error) {
	normalized := alphabet.Normalize(keyword)
	if normalized == "" {
		return nil, fmt.Errorf("keyword %q: %w", keyword, cryptors.ErrNotInAlphabet)
	}
	key := make([]int, 0, len(normalized))
	for _, r := range normalized {
		i, _ := alphabet.Index(r)
		key = append(key, i+1)
	}
	return &Cipher{alphabet: alphabet, key: key}, nil
}

// Encrypt applies the repeating key with positive sign.
func (c *Cipher) Encrypt(text string) string {
	return c.apply(text, 1)
}

// Decrypt applies the repeating key with negative sign, reversing Encrypt.
func (c *Cipher) Decrypt(text string) string {
	return c.apply(text, -1)
}

func (c *Cipher) apply(text string, sign int) string {
	out := make([]rune, 0, len(text))
	for i, r := range []rune(text) {
		out = append(out, c.alphabet.Shift(r, sign*c.key[i%len(c.key)]))
	}
	return string(out)
}
