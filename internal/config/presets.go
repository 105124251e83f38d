package config

import "sort"

// Presets are named temperature sweeps.
var Presets = map[string]SweepConfig{
	"cryogenic": {MinTemp: 0, MaxTemp: 50, Samples: 200, HeatCapacityOffset: 0.05},
	"room":      {MinTemp: 0, MaxTemp: 500, Samples: 200, HeatCapacityOffset: 1},
	"default":   {MinTemp: DefaultMinTemp, MaxTemp: DefaultMaxTemp, Samples: DefaultSamples, HeatCapacityOffset: DefaultHeatCapacityOffset},
	"stellar":   {MinTemp: 0, MaxTemp: 20000, Samples: 400, HeatCapacityOffset: 10},
}

func GetPreset(name string) (SweepConfig, bool) {
	s, ok := Presets[name]
	return s, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
