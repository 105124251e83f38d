// Package convert turns whitespace separated columns into a level file.
//
// Rows whose energy text repeats the previous row are merged into a single
// level, summing their (integer) degeneracies. Numbers are copied through
// verbatim, so the output keeps the precision of the input.
package convert

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/boltzmannizer/internal/loader"
	"github.com/san-kum/boltzmannizer/internal/thermo"
)

const DefaultKB = 0.695031

var (
	ErrColumn      = errors.New("convert: column out of range")
	ErrNumber      = errors.New("convert: not a number")
	ErrDegeneracy  = errors.New("convert: merged degeneracies must be integers")
	ErrColumnIndex = errors.New("convert: column indices are one-based")
)

// LineError reports the input line a problem was found on.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

type Options struct {
	// EnergyColumn and DegeneracyColumn are one-based.
	EnergyColumn     int
	DegeneracyColumn int
	KB               float64
	Units            thermo.Units
}

func DefaultOptions(energyColumn, degeneracyColumn int) Options {
	return Options{
		EnergyColumn:     energyColumn,
		DegeneracyColumn: degeneracyColumn,
		KB:               DefaultKB,
		Units:            thermo.Units{Energy: "cm^-1", Temperature: "K"},
	}
}

type document struct {
	FormatVersion int                  `json:"format_version"`
	KB            float64              `json:"k_B"`
	Units         thermo.Units         `json:"units"`
	Levels        [][2]json.RawMessage `json:"levels"`
}

type level struct {
	energy     string
	degeneracy string
}

// Convert reads columns from r and writes a level file to w.
func Convert(r io.Reader, w io.Writer, opts Options) error {
	if opts.EnergyColumn < 1 || opts.DegeneracyColumn < 1 {
		return fmt.Errorf("%w: got %d and %d", ErrColumnIndex, opts.EnergyColumn, opts.DegeneracyColumn)
	}

	levels, err := readLevels(r, opts.EnergyColumn-1, opts.DegeneracyColumn-1)
	if err != nil {
		return err
	}

	doc := document{
		FormatVersion: loader.FormatVersion,
		KB:            opts.KB,
		Units:         opts.Units,
		Levels:        make([][2]json.RawMessage, len(levels)),
	}
	for i, l := range levels {
		doc.Levels[i] = [2]json.RawMessage{json.RawMessage(l.energy), json.RawMessage(l.degeneracy)}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

func readLevels(r io.Reader, ecol, dcol int) ([]level, error) {
	var levels []level

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		cols := strings.Fields(scanner.Text())
		if len(cols) == 0 {
			continue
		}
		if ecol >= len(cols) || dcol >= len(cols) {
			return nil, &LineError{Line: lineNo, Err: fmt.Errorf("%w: %d columns", ErrColumn, len(cols))}
		}

		e, d := cols[ecol], cols[dcol]
		for _, tok := range []string{e, d} {
			if !isNumber(tok) {
				return nil, &LineError{Line: lineNo, Err: fmt.Errorf("%w: %q", ErrNumber, tok)}
			}
		}

		if n := len(levels); n > 0 && levels[n-1].energy == e {
			sum, err := addDegeneracies(levels[n-1].degeneracy, d)
			if err != nil {
				return nil, &LineError{Line: lineNo, Err: err}
			}
			levels[n-1].degeneracy = sum
			continue
		}
		levels = append(levels, level{energy: e, degeneracy: d})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return levels, nil
}

func addDegeneracies(a, b string) (string, error) {
	x, err := strconv.Atoi(a)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrDegeneracy, a)
	}
	y, err := strconv.Atoi(b)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrDegeneracy, b)
	}
	return strconv.Itoa(x + y), nil
}

// isNumber accepts tokens that are valid JSON numbers.
func isNumber(tok string) bool {
	if _, err := strconv.ParseFloat(tok, 64); err != nil {
		return false
	}
	var v float64
	return json.Unmarshal([]byte(tok), &v) == nil
}
