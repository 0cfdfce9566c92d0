package config

import "math"

// Presets are the standard skyrmion texture classes. Helicity selects Néel
// (radial) vs Bloch (whirling) in-plane rotation, vorticity -1 gives the
// antiskyrmion, chirality flips the global orientation.
var Presets = map[string]*Config{
	"neel": {
		Lattice:  LatticeConfig{Nx: 30, Ny: 30, Radius: 1.0},
		Skyrmion: SkyrmionConfig{Radius: 10, Helicity: 0, Vorticity: 1, Chirality: 1},
	},
	"neel-inward": {
		Lattice:  LatticeConfig{Nx: 30, Ny: 30, Radius: 1.0},
		Skyrmion: SkyrmionConfig{Radius: 10, Helicity: math.Pi, Vorticity: 1, Chirality: 1},
	},
	"bloch": {
		Lattice:  LatticeConfig{Nx: 30, Ny: 30, Radius: 1.0},
		Skyrmion: SkyrmionConfig{Radius: 10, Helicity: math.Pi / 2, Vorticity: 1, Chirality: 1},
	},
	"bloch-reversed": {
		Lattice:  LatticeConfig{Nx: 30, Ny: 30, Radius: 1.0},
		Skyrmion: SkyrmionConfig{Radius: 10, Helicity: math.Pi / 2, Vorticity: 1, Chirality: -1},
	},
	"antiskyrmion": {
		Lattice:  LatticeConfig{Nx: 30, Ny: 30, Radius: 1.0},
		Skyrmion: SkyrmionConfig{Radius: 10, Helicity: 0, Vorticity: -1, Chirality: 1},
	},
	"small-core": {
		Lattice:  LatticeConfig{Nx: 30, Ny: 30, Radius: 1.0},
		Skyrmion: SkyrmionConfig{Radius: 4, Helicity: 0, Vorticity: 1, Chirality: 1},
	},
	"wide-core": {
		Lattice:  LatticeConfig{Nx: 30, Ny: 30, Radius: 1.0},
		Skyrmion: SkyrmionConfig{Radius: 22, Helicity: math.Pi / 2, Vorticity: 1, Chirality: 1},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
