package config

import "sort"

var presets = map[string]*Config{
	"default": {
		Step: 0.1, Tol: 1e-8,
		BracketLo: -10, BracketHi: 10, BoundaryTol: 1e-4,
		Methods: []string{"shooting", "finite-diff", "variational"},
		DataDir: DefaultDataDir,
	},
	"fine": {
		Step: 0.02, Tol: 1e-10,
		BracketLo: -10, BracketHi: 10, BoundaryTol: 1e-4,
		Methods: []string{"shooting", "finite-diff", "variational"},
		DataDir: DefaultDataDir,
	},
	"coarse": {
		Step: 0.25, Tol: 1e-8,
		BracketLo: -10, BracketHi: 10, BoundaryTol: 1e-4,
		Methods: []string{"shooting", "finite-diff", "variational"},
		DataDir: DefaultDataDir,
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	c := *p
	c.Methods = append([]string(nil), p.Methods...)
	return &c
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
