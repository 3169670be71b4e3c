// Package caesar implements the fixed-shift substitution cipher.
package caesar

import "github.com/veilworks/cipher/cryptors"

// Cipher shifts every symbol by the same fixed offset.  Decryption is
// encryption with the negated shift, and shifts wrap in both directions, so
// a shift of -25 over a 26-symbol alphabet equals a shift of +1.
type Cipher struct {
	alphabet *cryptors.Alphabet
	shift    int
}

// New creates a Caesar cipher over the given alphabet.
func New(alphabet *cryptors.Alphabet, shift int) *Cipher {
	return &Cipher{alphabet: alphabet, shift: shift}
}

// Encrypt shifts every symbol of text by the cipher's offset.
func (c *Cipher) Encrypt(text string) string {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		out = append(out, c.alphabet.Shift(r, c.shift))
	}
	return string(out)
}

// Decrypt reverses Encrypt.
func (c *Cipher) Decrypt(text string) string {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		out = append(out, c.alphabet.Shift(r, -c.shift))
	}
	return string(out)
}
