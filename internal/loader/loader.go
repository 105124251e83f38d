// Package loader reads level files and turns them into thermo distributions.
//
// A level file is a JSON (or YAML) object:
//
//	{ "format_version": 1
//	, "k_B": 0.695031
//	, "units": { "energy": "cm^-1", "temperature": "K" }
//	, "levels": [[0, 1], [100.5, 3], [210]]
//	}
//
// Each level is [energy] or [energy, degeneracy]; the degeneracy defaults
// to 1. Units are optional and silently dropped when malformed.
package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/boltzmannizer/internal/thermo"
)

const FormatVersion = 1

type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// FormatFromPath picks the decoder by extension. Anything that is not
// .yaml or .yml is read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// DisplayName strips the directory and extension from path.
func DisplayName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

type record struct {
	FormatVersion any    `json:"format_version" yaml:"format_version"`
	KB            any    `json:"k_B" yaml:"k_B"`
	Levels        *[]any `json:"levels" yaml:"levels"`
	Units         any    `json:"units" yaml:"units"`
}

type Loader struct {
	log *zap.Logger
}

// New returns a Loader logging through log; a nil log discards output.
func New(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log}
}

// Load reads the file at path. I/O errors are returned as is, format
// problems as *FormatError and inconsistent levels as thermo errors.
func (l *Loader) Load(path string) (*thermo.Distribution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	d, err := l.decode(data, FormatFromPath(path), path, DisplayName(path))
	if err != nil {
		l.log.Debug("load failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}

	n, states := d.NumLevels()
	l.log.Debug("loaded distribution",
		zap.String("path", path),
		zap.String("name", d.Filename()),
		zap.Int("levels", n),
		zap.Float64("states", states),
		zap.Float64("k_B", d.KB()),
	)
	return d, nil
}

// Decode parses data in the given format; name becomes the distribution's
// display name.
func (l *Loader) Decode(data []byte, format Format, name string) (*thermo.Distribution, error) {
	return l.decode(data, format, name, name)
}

func (l *Loader) decode(data []byte, format Format, source, name string) (*thermo.Distribution, error) {
	var rec record
	if err := unmarshal(data, format, &rec); err != nil {
		return nil, &FormatError{Source: source, Err: err}
	}

	kB, energies, degeneracies, err := rec.parse()
	if err != nil {
		return nil, &FormatError{Source: source, Err: err}
	}

	opts := []thermo.Option{thermo.WithFilename(name)}
	if units, ok := parseUnits(rec.Units); ok {
		opts = append(opts, thermo.WithUnits(units))
	} else if rec.Units != nil {
		l.log.Debug("ignoring malformed units", zap.String("source", source))
	}

	return thermo.New(kB, energies, degeneracies, opts...)
}

func unmarshal(data []byte, format Format, rec *record) error {
	if format == FormatYAML {
		return yaml.Unmarshal(data, rec)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	return dec.Decode(rec)
}

func (r *record) parse() (float64, []float64, []float64, error) {
	if r.FormatVersion == nil {
		return 0, nil, nil, fmt.Errorf("%w: no format_version specified", ErrUnsupportedFormat)
	}
	if v, ok := toFloat(r.FormatVersion); !ok || v != FormatVersion {
		return 0, nil, nil, fmt.Errorf("%w: unable to parse format_version %v", ErrUnsupportedFormat, r.FormatVersion)
	}

	if r.KB == nil {
		return 0, nil, nil, fmt.Errorf("%w: k_B", ErrMissingField)
	}
	kB, ok := toFloat(r.KB)
	if !ok {
		return 0, nil, nil, fmt.Errorf("%w: k_B is not a number: %v", ErrFormat, r.KB)
	}

	if r.Levels == nil {
		return 0, nil, nil, fmt.Errorf("%w: levels", ErrMissingField)
	}

	levels := *r.Levels
	energies := make([]float64, 0, len(levels))
	degeneracies := make([]float64, 0, len(levels))
	for i, raw := range levels {
		e, g, err := parseLevel(i, raw)
		if err != nil {
			return 0, nil, nil, err
		}
		energies = append(energies, e)
		degeneracies = append(degeneracies, g)
	}

	return kB, energies, degeneracies, nil
}

func parseLevel(i int, raw any) (float64, float64, error) {
	entry, ok := raw.([]any)
	if !ok {
		return 0, 0, &MalformedLevelError{Index: i, Reason: fmt.Sprintf("expected a list, got %v", raw)}
	}
	if len(entry) == 0 {
		return 0, 0, &MalformedLevelError{Index: i, Reason: "missing energy"}
	}

	e, ok := toFloat(entry[0])
	if !ok {
		return 0, 0, &MalformedLevelError{Index: i, Reason: fmt.Sprintf("energy is not a number: %v", entry[0])}
	}
	if len(entry) == 1 {
		return e, 1, nil
	}

	g, ok := toFloat(entry[1])
	if !ok {
		return 0, 0, &MalformedLevelError{Index: i, Reason: fmt.Sprintf("degeneracy is not a number: %v", entry[1])}
	}
	return e, g, nil
}

func parseUnits(raw any) (thermo.Units, bool) {
	m, ok := raw.(map[string]any)
	if !ok {
		return thermo.Units{}, false
	}
	energy, ok := m["energy"].(string)
	if !ok {
		return thermo.Units{}, false
	}
	temperature, ok := m["temperature"].(string)
	if !ok {
		return thermo.Units{}, false
	}
	return thermo.Units{Energy: energy, Temperature: temperature}, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
