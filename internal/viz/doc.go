// Package viz renders distributions and temperature sweeps for the terminal.
//
//   - [PlotSeries]: one asciigraph line per dataset, in the dataset's color
//   - [PlotPopulations]: level occupations against temperature, colored
//     blue to red by energy
//   - [LevelTable], [DatasetTable]: lipgloss tables
//
// Colors are palette names ("blue", "orange", ...) as handed out by the
// session; [AnsiColor] and [LipglossColor] resolve them for each backend.
package viz
