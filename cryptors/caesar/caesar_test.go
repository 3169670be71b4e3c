package caesar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilworks/cipher/cryptors"
)

func latin(t *testing.T) *cryptors.Alphabet {
	t.Helper()
	a, err := cryptors.NewAlphabet(cryptors.Latin)
	require.NoError(t, err)
	return a
}

func TestEncrypt(t *testing.T) {
	c := New(latin(t), 3)
	assert.Equal(t, "KHOOR", c.Encrypt("HELLO"))
}

func TestDecryptReversesEncrypt(t *testing.T) {
	c := New(latin(t), 3)
	assert.Equal(t, "HELLO", c.Decrypt("KHOOR"))
}

func TestNegativeShiftWraps(t *testing.T) {
	alphabet := latin(t)
	// Shifting by -25 over a 26-symbol alphabet equals shifting by +1.
	assert.Equal(t,
		New(alphabet, 1).Encrypt("HELLO"),
		New(alphabet, -25).Encrypt("HELLO"))
}

func TestZeroShiftIsIdentity(t *testing.T) {
	c := New(latin(t), 0)
	assert.Equal(t, "HELLO", c.Encrypt("HELLO"))
}
