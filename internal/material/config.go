package material

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gocomposite/internal/micromech"
	"gopkg.in/ini.v1"
)

// Config is a complete set of inputs for one composite plate.
// It can be read from an .ini or .json file; missing keys keep their defaults.
type Config struct {
	Name string `json:"name,omitempty"`

	Material micromech.Material `json:"-"`

	// Loading
	MassFraction   float64 `json:"mass_fraction"`   // w_r
	Thickness      float64 `json:"thickness"`       // h (m)
	PorosityFactor float64 `json:"porosity_factor"` // p

	// Selections, as short codes (FU, FGV, ... / none, P-1, P-2)
	Distribution string `json:"distribution"`
	Porosity     string `json:"porosity"`

	GridPoints int `json:"grid_points"`
}

// jsonMaterial carries the material block of a JSON config
type jsonMaterial struct {
	Em   *float64 `json:"e_m"`
	RhoM *float64 `json:"rho_m"`
	Er   *float64 `json:"e_r"`
	RhoR *float64 `json:"rho_r"`
	Dr   *float64 `json:"d_r"`
	Hr   *float64 `json:"h_r"`
}

// DefaultConfig returns the reference plate
func DefaultConfig() *Config {
	return &Config{
		Material:       Default(),
		MassFraction:   MassFraction,
		Thickness:      PlateThickness,
		PorosityFactor: PorosityFactor,
		Distribution:   micromech.Uniform.String(),
		Porosity:       micromech.NoPorosity.String(),
		GridPoints:     GridPoints,
	}
}

// LoadFromFile reads a config file, choosing the format from its extension
func LoadFromFile(path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini", ".cfg", ".conf":
		cfg, err = loadINI(path)
	case ".json":
		cfg, err = loadJSON(path)
	default:
		return nil, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func loadINI(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	cfg.Name = file.Section("").Key("name").String()

	floatKeys := []struct {
		section, key string
		dst          *float64
	}{
		{"material", "e_m", &cfg.Material.Em},
		{"material", "rho_m", &cfg.Material.RhoM},
		{"material", "e_r", &cfg.Material.Er},
		{"material", "rho_r", &cfg.Material.RhoR},
		{"material", "d_r", &cfg.Material.Dr},
		{"material", "h_r", &cfg.Material.Hr},
		{"loading", "mass_fraction", &cfg.MassFraction},
		{"loading", "thickness", &cfg.Thickness},
		{"loading", "porosity_factor", &cfg.PorosityFactor},
	}
	for _, f := range floatKeys {
		sec := file.Section(f.section)
		if !sec.HasKey(f.key) {
			continue
		}
		v, err := sec.Key(f.key).Float64()
		if err != nil {
			return nil, fmt.Errorf("[%s] %s: %w", f.section, f.key, err)
		}
		*f.dst = v
	}

	load := file.Section("loading")
	cfg.Distribution = load.Key("distribution").MustString(cfg.Distribution)
	cfg.Porosity = load.Key("porosity").MustString(cfg.Porosity)

	if grid := file.Section("grid"); grid.HasKey("points") {
		n, err := grid.Key("points").Int()
		if err != nil {
			return nil, fmt.Errorf("[grid] points: %w", err)
		}
		cfg.GridPoints = n
	}
	return cfg, nil
}

func loadJSON(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	var wrapper struct {
		Material jsonMaterial `json:"material"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, err
	}
	m := wrapper.Material
	for _, f := range []struct {
		src *float64
		dst *float64
	}{
		{m.Em, &cfg.Material.Em},
		{m.RhoM, &cfg.Material.RhoM},
		{m.Er, &cfg.Material.Er},
		{m.RhoR, &cfg.Material.RhoR},
		{m.Dr, &cfg.Material.Dr},
		{m.Hr, &cfg.Material.Hr},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}
	return cfg, nil
}

// Validate checks the physical constraints and the selector codes
func (c *Config) Validate() error {
	if err := c.Material.Validate(); err != nil {
		return err
	}
	if _, err := micromech.NetVolumeFraction(c.MassFraction, c.Material.RhoR, c.Material.RhoM); err != nil {
		return err
	}
	if !(c.Thickness > 0) {
		return &micromech.DomainError{Param: "plate thickness h", Value: c.Thickness, Reason: "must be strictly positive"}
	}
	if !(c.PorosityFactor >= 0 && c.PorosityFactor <= 1) {
		return &micromech.DomainError{Param: "porosity factor p", Value: c.PorosityFactor, Reason: "must lie in [0, 1]"}
	}
	if c.GridPoints < 2 {
		return &micromech.DomainError{Param: "grid points", Value: float64(c.GridPoints), Reason: "need at least 2"}
	}
	if !strings.EqualFold(c.Distribution, "all") {
		if _, err := micromech.ParseDistribution(c.Distribution); err != nil {
			return err
		}
	}
	if _, err := micromech.ParsePorosityModel(c.Porosity); err != nil {
		return err
	}
	return nil
}

// Selections parses the distribution and porosity codes.
// A distribution of "all" yields every law.
func (c *Config) Selections() ([]micromech.Distribution, micromech.PorosityModel, error) {
	pm, err := micromech.ParsePorosityModel(c.Porosity)
	if err != nil {
		return nil, 0, err
	}
	if strings.EqualFold(c.Distribution, "all") {
		return micromech.Distributions(), pm, nil
	}
	d, err := micromech.ParseDistribution(c.Distribution)
	if err != nil {
		return nil, 0, err
	}
	return []micromech.Distribution{d}, pm, nil
}

// NetVolumeFraction converts the configured mass fraction
func (c *Config) NetVolumeFraction() (float64, error) {
	return micromech.NetVolumeFraction(c.MassFraction, c.Material.RhoR, c.Material.RhoM)
}

// Grid returns the through-thickness positions
func (c *Config) Grid() ([]float64, error) {
	return micromech.ThicknessGrid(c.Thickness, c.GridPoints)
}
