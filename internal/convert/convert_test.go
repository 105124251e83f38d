package convert

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/boltzmannizer/internal/loader"
)

const columns = `0  0.0      1
1  1.5      3

2  4.5000   5
2  4.5000   2
3  9.0      7
`

func TestConvertMergesAdjacentLevels(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Convert(strings.NewReader(columns), &buf, DefaultOptions(2, 3)))

	out := buf.String()
	assert.Contains(t, out, `"format_version": 1`)
	assert.Contains(t, out, `"k_B": 0.695031`)
	assert.Contains(t, out, `"energy": "cm^-1"`)
	assert.Contains(t, out, "4.5000")

	d, err := loader.New(nil).Decode(buf.Bytes(), loader.FormatJSON, "converted")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1.5, 4.5, 9}, d.Energies())
	assert.Equal(t, []float64{1, 3, 7, 7}, d.Degeneracies())

	u, ok := d.Units()
	require.True(t, ok)
	assert.Equal(t, "K", u.Temperature)
}

func TestConvertCustomOptions(t *testing.T) {
	opts := DefaultOptions(1, 2)
	opts.KB = 1

	var buf bytes.Buffer
	require.NoError(t, Convert(strings.NewReader("0 2\n1 1\n"), &buf, opts))

	d, err := loader.New(nil).Decode(buf.Bytes(), loader.FormatJSON, "x")
	require.NoError(t, err)
	assert.Equal(t, 1.0, d.KB())
	assert.Equal(t, []float64{2, 1}, d.Degeneracies())
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  Options
		want  error
		line  int
	}{
		{"column out of range", "0 1\n1 2 3\n", DefaultOptions(1, 3), ErrColumn, 1},
		{"not a number", "0 1\nabc 2\n", DefaultOptions(1, 2), ErrNumber, 2},
		{"fractional merge", "1 1\n1 0.5\n", DefaultOptions(1, 2), ErrDegeneracy, 2},
		{"zero column", "0 1\n", DefaultOptions(0, 1), ErrColumnIndex, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Convert(strings.NewReader(tt.input), &bytes.Buffer{}, tt.opts)
			require.ErrorIs(t, err, tt.want)

			var lerr *LineError
			if tt.line == 0 {
				assert.False(t, errors.As(err, &lerr))
				return
			}
			require.True(t, errors.As(err, &lerr))
			assert.Equal(t, tt.line, lerr.Line)
		})
	}
}

func TestConvertEmptyInput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Convert(strings.NewReader("\n\n"), &buf, DefaultOptions(1, 2)))
	assert.Contains(t, buf.String(), `"levels": []`)
}
