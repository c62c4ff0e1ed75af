package config

import "sort"

// Presets are named input setups that showcase algorithm-specific
// behavior, keyed by algorithm then preset name.
var Presets = map[string]map[string]*Config{
	"bubble": {
		"early-exit": {
			Algorithm: "bubble", Size: 12, Min: 1, Max: 50, Shape: "nearly_sorted", Speed: "medium",
		},
		"worst-case": {
			Algorithm: "bubble", Size: 12, Min: 1, Max: 50, Shape: "reversed", Speed: "fast",
		},
	},
	"quick": {
		"worst-case": {
			// Sorted input keeps the last-element pivot maximal each
			// partition, degrading to quadratic behavior.
			Algorithm: "quick", Size: 12, Min: 1, Max: 50, Shape: "sorted", Speed: "fast",
		},
		"balanced": {
			Algorithm: "quick", Size: 16, Min: 1, Max: 99, Shape: "random", Speed: "medium",
		},
	},
	"selection": {
		"few-unique": {
			Algorithm: "selection", Size: 16, Min: 1, Max: 9, Shape: "few_unique", Speed: "medium",
		},
		"no-op-swaps": {
			Algorithm: "selection", Size: 10, Min: 1, Max: 50, Shape: "sorted", Speed: "fast",
		},
	},
	"insertion": {
		"nearly-sorted": {
			Algorithm: "insertion", Size: 14, Min: 1, Max: 50, Shape: "nearly_sorted", Speed: "medium",
		},
	},
	"merge": {
		"reversed": {
			Algorithm: "merge", Size: 16, Min: 1, Max: 99, Shape: "reversed", Speed: "fast",
		},
	},
}

// GetPreset returns the named preset or nil when not found.
func GetPreset(algorithm, name string) *Config {
	group, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	return group[name]
}

// ListPresets returns the preset names for an algorithm, or nil.
func ListPresets(algorithm string) []string {
	group, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
