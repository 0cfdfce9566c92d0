package config

import (
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/davidcortesortuno/skyrmion-model-widget/internal/spin"
)

const (
	DefaultNx        = 30
	DefaultNy        = 30
	DefaultHexRadius = 1.0
	DefaultRadius    = 10.0
	DefaultVorticity = 1
	DefaultChirality = 1
)

type Config struct {
	Lattice  LatticeConfig  `yaml:"lattice"`
	Skyrmion SkyrmionConfig `yaml:"skyrmion"`
}

type LatticeConfig struct {
	Nx     int     `yaml:"nx"`
	Ny     int     `yaml:"ny"`
	Radius float64 `yaml:"radius"`
}

type SkyrmionConfig struct {
	Radius    float64 `yaml:"radius"`
	Helicity  float64 `yaml:"helicity"`
	Vorticity int     `yaml:"vorticity"`
	Chirality int     `yaml:"chirality"`
}

func DefaultConfig() *Config {
	return &Config{
		Lattice: LatticeConfig{
			Nx:     DefaultNx,
			Ny:     DefaultNy,
			Radius: DefaultHexRadius,
		},
		Skyrmion: SkyrmionConfig{
			Radius:    DefaultRadius,
			Helicity:  0,
			Vorticity: DefaultVorticity,
			Chirality: DefaultChirality,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Parameters assembles the evaluation parameters for a skyrmion pinned at
// (cx, cy), normally the lattice bounding-box center.
func (c *Config) Parameters(cx, cy float64) spin.Parameters {
	return spin.Parameters{
		Radius:    c.Skyrmion.Radius,
		CenterX:   cx,
		CenterY:   cy,
		Helicity:  c.Skyrmion.Helicity,
		Vorticity: c.Skyrmion.Vorticity,
		Chirality: c.Skyrmion.Chirality,
	}
}

// HelicityDegrees is a display helper for the parameter panel.
func (c *Config) HelicityDegrees() float64 {
	return c.Skyrmion.Helicity * 180 / math.Pi
}
