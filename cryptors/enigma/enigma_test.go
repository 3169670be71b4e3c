package enigma

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilworks/cipher/cryptors"
	"github.com/veilworks/cipher/cryptors/plugboard"
	"github.com/veilworks/cipher/cryptors/reflector"
	"github.com/veilworks/cipher/cryptors/rotor"
)

func latin(t *testing.T) *cryptors.Alphabet {
	t.Helper()
	a, err := cryptors.NewAlphabet(cryptors.Latin)
	require.NoError(t, err)
	return a
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// writeFixture lays down hand-built key material for a 3-rotor machine:
// reflector pairing adjacent letters (A-B, C-D, ... Y-Z), every rotor wired
// with the in-order offsets 1..25 starting at cursor 0, and a plugboard
// swapping H and X.  With this material "HELLO" encrypts to "YFMKN".
func writeFixture(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	cfg := Config{
		Alphabet:      latin(t),
		RotorCount:    3,
		ReflectorFile: filepath.Join(dir, "reflector.txt"),
		WiringFile:    filepath.Join(dir, "passwords.txt"),
		CursorFile:    filepath.Join(dir, "rotors_cursor.txt"),
		PlugboardFile: filepath.Join(dir, "plugboard.txt"),
		ReflectorMode: ModeLoad,
		RotorMode:     ModeLoad,
		Logger:        discard(),
	}

	pairs := make(map[string]string)
	for i := 0; i < 26; i += 2 {
		a, b := string(cryptors.Latin[i]), string(cryptors.Latin[i+1])
		pairs[a], pairs[b] = b, a
	}
	record, err := json.Marshal(pairs)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(cfg.ReflectorFile, append(record, '\n'), 0o600))

	wiring := make([]int, 25)
	for i := range wiring {
		wiring[i] = i + 1
	}
	line, err := json.Marshal(wiring)
	require.NoError(t, err)
	wirings := fmt.Sprintf("%s\n%s\n%s\n", line, line, line)
	require.NoError(t, os.WriteFile(cfg.WiringFile, []byte(wirings), 0o600))
	require.NoError(t, os.WriteFile(cfg.CursorFile, []byte("0\n0\n0\n"), 0o600))
	require.NoError(t, os.WriteFile(cfg.PlugboardFile, []byte("H - X\n"), 0o600))
	return cfg
}

func TestEncryptPinnedFixture(t *testing.T) {
	m, err := New(writeFixture(t))
	require.NoError(t, err)

	got := m.Encrypt("HELLO")
	assert.Equal(t, "YFMKN", got)

	for i := range got {
		assert.NotEqualf(t, "HELLO"[i], got[i],
			"position %d encrypts to itself", i)
	}
}

func TestEncryptIsSelfInverse(t *testing.T) {
	cfg := writeFixture(t)
	m1, err := New(cfg)
	require.NoError(t, err)
	m2, err := New(cfg)
	require.NoError(t, err)

	const plain = "THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG"
	assert.Equal(t, plain, m2.Encrypt(m1.Encrypt(plain)))
}

func TestRoundTripGeneratedMaterial(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Alphabet:      latin(t),
		RotorCount:    3,
		ReflectorFile: filepath.Join(dir, "reflector.txt"),
		WiringFile:    filepath.Join(dir, "passwords.txt"),
		CursorFile:    filepath.Join(dir, "rotors_cursor.txt"),
		PlugboardFile: filepath.Join(dir, "plugboard.txt"),
		ReflectorMode: ModeGenerate,
		RotorMode:     ModeGenerate,
		Rand:          rand.New(rand.NewPCG(42, 1)),
		Logger:        discard(),
	}
	require.NoError(t, os.WriteFile(cfg.PlugboardFile, []byte("A - B\nC - D\n"), 0o600))

	m1, err := New(cfg)
	require.NoError(t, err)
	const plain = "ATTACKATDAWN"
	ciphertext := m1.Encrypt(plain)
	assert.NotEqual(t, plain, ciphertext)

	// A fresh machine loading the persisted material must invert the first.
	cfg.ReflectorMode = ModeLoad
	cfg.RotorMode = ModeLoad
	m2, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, plain, m2.Encrypt(ciphertext))
}

func TestSteppingCarry(t *testing.T) {
	alphabet := latin(t)
	wiring := make([]int, 25)
	for i := range wiring {
		wiring[i] = i + 1
	}
	rotors := make([]*rotor.Rotor, 3)
	for i := range rotors {
		var err error
		rotors[i], err = rotor.Load(26, wiring, 0, discard())
		require.NoError(t, err)
	}
	refl, err := reflector.FromPairs(alphabet, nil)
	require.NoError(t, err)
	plug, err := plugboard.Build(alphabet, nil)
	require.NoError(t, err)
	m := newMachine(alphabet, refl, rotors, plug, discard())

	cursors := func() [3]int {
		return [3]int{rotors[0].Cursor(), rotors[1].Cursor(), rotors[2].Cursor()}
	}

	// One full revolution of rotor 0 carries exactly one step into rotor 1.
	for i := 0; i < 25; i++ {
		m.stepRotors()
	}
	assert.Equal(t, [3]int{0, 1, 0}, cursors())

	// (L-1)^2 steps in total carry exactly one step into rotor 2.
	for i := 25; i < 625; i++ {
		m.stepRotors()
	}
	assert.Equal(t, [3]int{0, 0, 1}, cursors())
}

func TestLastRotorNeverCarries(t *testing.T) {
	alphabet := latin(t)
	rotors := []*rotor.Rotor{mustLoad(t, []int{1, 2}, 0)}
	refl, err := reflector.FromPairs(alphabet, nil)
	require.NoError(t, err)
	plug, err := plugboard.Build(alphabet, nil)
	require.NoError(t, err)
	m := newMachine(alphabet, refl, rotors, plug, discard())

	// A single rotor wrapping must not panic or loop; it just wraps.
	for i := 0; i < 5; i++ {
		m.stepRotors()
	}
	assert.Equal(t, 1, rotors[0].Cursor())
}

func mustLoad(t *testing.T, wiring []int, cursor int) *rotor.Rotor {
	t.Helper()
	r, err := rotor.Load(len(wiring)+1, wiring, cursor, discard())
	require.NoError(t, err)
	return r
}

func TestRotorCountMismatch(t *testing.T) {
	cfg := writeFixture(t)
	cfg.RotorCount = 4
	_, err := New(cfg)
	assert.ErrorIs(t, err, cryptors.ErrRotorCount)
}

func TestInvalidCursorIsFatal(t *testing.T) {
	cfg := writeFixture(t)
	require.NoError(t, os.WriteFile(cfg.CursorFile, []byte("40\n0\n0\n"), 0o600))
	_, err := New(cfg)
	assert.ErrorIs(t, err, cryptors.ErrInvalidCursor)
}

func TestPlugboardErrorsAbortConstruction(t *testing.T) {
	cfg := writeFixture(t)
	require.NoError(t, os.WriteFile(cfg.PlugboardFile, []byte("A-B\nA-C\n"), 0o600))
	_, err := New(cfg)
	assert.ErrorIs(t, err, cryptors.ErrDuplicateKey)
}

func TestMissingKeyMaterialIsFatal(t *testing.T) {
	cfg := writeFixture(t)
	cfg.PlugboardFile = filepath.Join(t.TempDir(), "missing.txt")
	_, err := New(cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewRejectsEmptyBank(t *testing.T) {
	cfg := writeFixture(t)
	cfg.RotorCount = 0
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("generate")
	require.NoError(t, err)
	assert.Equal(t, ModeGenerate, mode)

	mode, err = ParseMode("load")
	require.NoError(t, err)
	assert.Equal(t, ModeLoad, mode)

	_, err = ParseMode("m")
	assert.ErrorIs(t, err, cryptors.ErrUnknownMode)
}

func TestUnknownModeIsFatal(t *testing.T) {
	cfg := writeFixture(t)
	cfg.ReflectorMode = "fresh"
	_, err := New(cfg)
	assert.ErrorIs(t, err, cryptors.ErrUnknownMode)
}
