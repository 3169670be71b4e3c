// Package enigma composes plugboard, rotors and reflector into the rotor
// machine cipher and drives its encode loop and stepping mechanism.
package enigma

import (
	crand "crypto/rand"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/veilworks/cipher/cryptors"
	"github.com/veilworks/cipher/cryptors/plugboard"
	"github.com/veilworks/cipher/cryptors/reflector"
	"github.com/veilworks/cipher/cryptors/rotor"
)

// Mode selects how a component's key material is obtained.
type Mode string

const (
	// ModeGenerate creates fresh random key material and persists it for
	// later reuse.
	ModeGenerate Mode = "generate"
	// ModeLoad reads key material persisted by an earlier run.
	ModeLoad Mode = "load"
)

// ParseMode converts a flag value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeGenerate, ModeLoad:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%q (want %q or %q): %w",
		s, ModeGenerate, ModeLoad, cryptors.ErrUnknownMode)
}

// Config describes the key material of a machine: where each component's
// material lives and whether it is generated fresh or loaded.
type Config struct {
	Alphabet      *cryptors.Alphabet
	RotorCount    int
	ReflectorFile string // one JSON symbol-pair object
	WiringFile    string // one JSON offset array per rotor
	CursorFile    string // one integer per rotor
	PlugboardFile string // one "X - Y" line per pair
	ReflectorMode Mode
	RotorMode     Mode

	// Rand is the source used in generate mode.  Left nil, a fresh
	// cryptographically seeded source is used; tests inject a fixed seed.
	Rand *rand.Rand

	Logger *slog.Logger
}

// Machine is a rotor cipher: plugboard, an ordered bank of rotors and a
// reflector sharing one alphabet.  It is the sole mutator of rotor cursors.
// A machine is built once per run from a Config and processes complete text
// buffers; the transform is its own inverse, so decryption is encryption
// with identical initial key material.
type Machine struct {
	alphabet  *cryptors.Alphabet
	reflector *reflector.Reflector
	rotors    []*rotor.Rotor
	plugboard *plugboard.Plugboard
	logger    *slog.Logger
}

// New builds a machine from cfg.  Components are built in a fixed order:
// reflector, then rotors, then plugboard.  Any construction failure aborts
// the whole machine; there is no partial setup.
func New(cfg Config) (*Machine, error) {
	if cfg.RotorCount < 1 {
		return nil, fmt.Errorf("rotor count %d: need at least one rotor", cfg.RotorCount)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	rnd := cfg.Rand
	if rnd == nil {
		var seed [32]byte
		if _, err := crand.Read(seed[:]); err != nil {
			return nil, fmt.Errorf("seeding generator: %w", err)
		}
		rnd = rand.New(rand.NewChaCha8(seed))
	}

	refl, err := buildReflector(cfg, rnd, logger)
	if err != nil {
		return nil, fmt.Errorf("reflector %s: %w", cfg.ReflectorFile, err)
	}
	rotors, err := buildRotors(cfg, rnd, logger)
	if err != nil {
		return nil, err
	}
	lines, err := readPairLines(cfg.PlugboardFile)
	if err != nil {
		return nil, fmt.Errorf("plugboard %s: %w", cfg.PlugboardFile, err)
	}
	plug, err := plugboard.Build(cfg.Alphabet, lines)
	if err != nil {
		return nil, fmt.Errorf("plugboard %s: %w", cfg.PlugboardFile, err)
	}

	return newMachine(cfg.Alphabet, refl, rotors, plug, logger), nil
}

func newMachine(alphabet *cryptors.Alphabet, refl *reflector.Reflector,
	rotors []*rotor.Rotor, plug *plugboard.Plugboard, logger *slog.Logger) *Machine {
	return &Machine{
		alphabet:  alphabet,
		reflector: refl,
		rotors:    rotors,
		plugboard: plug,
		logger:    logger,
	}
}

func buildReflector(cfg Config, rnd *rand.Rand, logger *slog.Logger) (*reflector.Reflector, error) {
	switch cfg.ReflectorMode {
	case ModeGenerate:
		logger.Info("generating reflector", "file", cfg.ReflectorFile)
		refl, err := reflector.Generate(cfg.Alphabet, rnd)
		if err != nil {
			return nil, err
		}
		if err := saveReflector(cfg.ReflectorFile, refl.Pairs()); err != nil {
			return nil, err
		}
		return refl, nil
	case ModeLoad:
		logger.Info("loading reflector", "file", cfg.ReflectorFile)
		pairs, err := loadReflectorPairs(cfg.ReflectorFile)
		if err != nil {
			return nil, err
		}
		return reflector.FromPairs(cfg.Alphabet, pairs)
	}
	return nil, fmt.Errorf("mode %q: %w", cfg.ReflectorMode, cryptors.ErrUnknownMode)
}

func buildRotors(cfg Config, rnd *rand.Rand, logger *slog.Logger) ([]*rotor.Rotor, error) {
	switch cfg.RotorMode {
	case ModeGenerate:
		logger.Info("generating rotors", "count", cfg.RotorCount,
			"wiring", cfg.WiringFile, "cursors", cfg.CursorFile)
		rotors := make([]*rotor.Rotor, cfg.RotorCount)
		for i := range rotors {
			rotors[i] = rotor.Generate(cfg.Alphabet.Len(), rnd)
		}
		if err := saveRotors(cfg.WiringFile, cfg.CursorFile, rotors); err != nil {
			return nil, err
		}
		return rotors, nil
	case ModeLoad:
		logger.Info("loading rotors", "count", cfg.RotorCount,
			"wiring", cfg.WiringFile, "cursors", cfg.CursorFile)
		wirings, err := loadWirings(cfg.WiringFile)
		if err != nil {
			return nil, fmt.Errorf("rotor wiring %s: %w", cfg.WiringFile, err)
		}
		cursors, err := loadCursors(cfg.CursorFile)
		if err != nil {
			return nil, fmt.Errorf("rotor cursors %s: %w", cfg.CursorFile, err)
		}
		if len(wirings) != cfg.RotorCount || len(cursors) != cfg.RotorCount {
			return nil, fmt.Errorf("want %d rotors, wiring has %d and cursors have %d: %w",
				cfg.RotorCount, len(wirings), len(cursors), cryptors.ErrRotorCount)
		}
		rotors := make([]*rotor.Rotor, cfg.RotorCount)
		for i := range rotors {
			rotors[i], err = rotor.Load(cfg.Alphabet.Len(), wirings[i], cursors[i], logger)
			if err != nil {
				return nil, fmt.Errorf("rotor %d: %w", i, err)
			}
		}
		return rotors, nil
	}
	return nil, fmt.Errorf("mode %q: %w", cfg.RotorMode, cryptors.ErrUnknownMode)
}

// Encrypt runs text through the machine, one symbol at a time: plugboard,
// forward rotor pass, reflector, reverse rotor pass, plugboard, then a rotor
// step.  Running the output through a machine with identical initial key
// material reproduces the input, because the five stages are a palindrome of
// mutually inverse operations around the involutive reflector and stepping
// depends only on position, never on symbol value.
//
// Text is expected to be restricted to the alphabet already (see
// Alphabet.Normalize); foreign symbols pass through untouched.
func (m *Machine) Encrypt(text string) string {
	out := make([]rune, 0, len(text))
	for _, c := range text {
		c = m.plugboard.Apply(c)
		c = m.rotorPass(c, 1)
		c = m.reflector.Apply(c)
		c = m.rotorPass(c, -1)
		c = m.plugboard.Apply(c)
		out = append(out, c)
		m.stepRotors()
	}
	return string(out)
}

// rotorPass shifts c through every rotor in bank order.  The forward pass
// uses sign +1, the reverse pass -1; both traverse the rotors in the same
// order, so with unchanged cursors the passes cancel around the reflector.
func (m *Machine) rotorPass(c rune, sign int) rune {
	for _, r := range m.rotors {
		c = m.alphabet.Shift(c, sign*r.Offset())
	}
	return c
}

// stepRotors advances the bank like an odometer: rotor 0 always steps, and a
// rotor that wraps to zero carries a step into the next one.  The last rotor
// never carries further.
func (m *Machine) stepRotors() {
	for i, r := range m.rotors {
		wrapped := r.Step()
		if !wrapped || i == len(m.rotors)-1 {
			break
		}
		m.logger.Debug("rotor wrapped, carrying", "rotor", i)
	}
}
