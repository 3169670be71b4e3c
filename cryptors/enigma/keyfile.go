package enigma

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/veilworks/cipher/cryptors"
	"github.com/veilworks/cipher/cryptors/rotor"
)

// Key material line formats, fixed for interop with prior runs:
//
//	reflector  one line, a JSON object of symbol to symbol
//	wiring     one line per rotor, a JSON array of L-1 positive offsets
//	cursors    one line per rotor, a single integer
//	plugboard  one line per pair, "X - Y"

func saveReflector(path string, pairs map[rune]rune) error {
	record := make(map[string]string, len(pairs))
	for from, to := range pairs {
		record[string(from)] = string(to)
	}
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o600)
}

func loadReflectorPairs(path string) (map[rune]rune, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, cryptors.ErrEmptyFile
	}
	var record map[string]string
	if err := json.Unmarshal(sc.Bytes(), &record); err != nil {
		return nil, fmt.Errorf("parsing mapping: %w", err)
	}
	pairs := make(map[rune]rune, len(record))
	for from, to := range record {
		fr, tr := []rune(from), []rune(to)
		if len(fr) != 1 || len(tr) != 1 {
			return nil, fmt.Errorf("entry %q: %q: %w", from, to, cryptors.ErrBadPair)
		}
		pairs[fr[0]] = tr[0]
	}
	return pairs, nil
}

func saveRotors(wiringPath, cursorPath string, rotors []*rotor.Rotor) error {
	wf, err := os.OpenFile(wiringPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer wf.Close()
	cf, err := os.OpenFile(cursorPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer cf.Close()

	for _, r := range rotors {
		record, err := json.Marshal(r.Wiring())
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(wf, "%s\n", record); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(cf, "%d\n", r.Cursor()); err != nil {
			return err
		}
	}
	return nil
}

func loadWirings(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var wirings [][]int
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		var wiring []int
		if err := json.Unmarshal(sc.Bytes(), &wiring); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		wirings = append(wirings, wiring)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(wirings) == 0 {
		return nil, cryptors.ErrEmptyFile
	}
	return wirings, nil
}

func loadCursors(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cursors []int
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		cursor, err := strconv.Atoi(string(sc.Bytes()))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		cursors = append(cursors, cursor)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(cursors) == 0 {
		return nil, cryptors.ErrEmptyFile
	}
	return cursors, nil
}

func readPairLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
