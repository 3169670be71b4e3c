package plugboard

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

func TestBuildAndApply(t *testing.T) {
	p, err := Build(latin(t), []string{"A - B", "x-y", ""})
	require.NoError(t, err)
	assert.Equal(t, 2, p.PairCount())

	// Pairs are symmetric and case-normalized.
	assert.Equal(t, 'B', p.Apply('A'))
	assert.Equal(t, 'A', p.Apply('B'))
	assert.Equal(t, 'Y', p.Apply('X'))
	assert.Equal(t, 'X', p.Apply('Y'))

	// Unwired symbols pass through.
	assert.Equal(t, 'C', p.Apply('C'))
}

func TestBuildRejectsDuplicateKey(t *testing.T) {
	_, err := Build(latin(t), []string{"A-B", "A-C"})
	assert.ErrorIs(t, err, cryptors.ErrDuplicateKey)
}

func TestBuildRejectsDuplicateValue(t *testing.T) {
	_, err := Build(latin(t), []string{"A-B", "C-B"})
	assert.ErrorIs(t, err, cryptors.ErrDuplicateValue)
}

func TestBuildRejectsMalformedLines(t *testing.T) {
	_, err := Build(latin(t), []string{"AB"})
	assert.ErrorIs(t, err, cryptors.ErrBadPair)

	_, err = Build(latin(t), []string{" - B"})
	assert.ErrorIs(t, err, cryptors.ErrBadPair)
}

func TestBuildRejectsForeignSymbols(t *testing.T) {
	_, err := Build(latin(t), []string{"A-9"})
	assert.ErrorIs(t, err, cryptors.ErrNotInAlphabet)
}

func TestEmptyPlugboardIsIdentity(t *testing.T) {
	p, err := Build(latin(t), nil)
	require.NoError(t, err)
	assert.Zero(t, p.PairCount())
	for _, s := range cryptors.Latin {
		assert.Equal(t, s, p.Apply(s))
	}
}
