package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("242"))

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	Selected = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("213"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	borderColor = lipgloss.Color("240")
)

// colorHex maps the palette names used for datasets to terminal colors.
var colorHex = map[string]string{
	"black":   "#000000",
	"blue":    "#1f4fff",
	"brown":   "#a52a2a",
	"cyan":    "#00cccc",
	"gray":    "#808080",
	"green":   "#00a000",
	"grey":    "#808080",
	"magenta": "#cc00cc",
	"orange":  "#ff8c00",
	"red":     "#e00000",
	"yellow":  "#e0c000",
}

// LipglossColor resolves a palette name. Unknown names are passed through,
// so hex codes and ANSI numbers work too.
func LipglossColor(name string) lipgloss.Color {
	if hex, ok := colorHex[name]; ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(name)
}

// AnsiColor resolves a palette name for asciigraph, falling back to the
// terminal default.
func AnsiColor(name string) asciigraph.AnsiColor {
	if c, ok := asciigraph.ColorNames[name]; ok {
		return c
	}
	if c, ok := asciigraph.ColorNames[strings.Replace(name, "grey", "gray", 1)]; ok {
		return c
	}
	return asciigraph.Default
}

// Swatch renders a colored marker for a dataset.
func Swatch(color string) string {
	return lipgloss.NewStyle().Foreground(LipglossColor(color)).Render("●")
}

var jetRamp = []asciigraph.AnsiColor{
	asciigraph.Blue,
	asciigraph.Cyan,
	asciigraph.Green,
	asciigraph.Yellow,
	asciigraph.Red,
}

// JetColor maps t in [0, 1] onto a blue to red ramp.
func JetColor(t float64) asciigraph.AnsiColor {
	return jetRamp[jetIndex(t, len(jetRamp))]
}

// JetHex is the continuous version of JetColor for lipgloss output.
func JetHex(t float64) lipgloss.Color {
	t = clamp01(t)
	r := clamp01(1.5 - math.Abs(4*t-3))
	g := clamp01(1.5 - math.Abs(4*t-2))
	b := clamp01(1.5 - math.Abs(4*t-1))
	return lipgloss.Color(hexColor(int(r*255), int(g*255), int(b*255)))
}

func jetIndex(t float64, n int) int {
	i := int(clamp01(t) * float64(n-1))
	if i >= n {
		i = n - 1
	}
	return i
}

func clamp01(t float64) float64 {
	if math.IsNaN(t) || t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
