package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir      = ".isoperf"
	DefaultOutputDir    = "out"
	DefaultPicks        = 4
	DefaultCanvasWidth  = 80
	DefaultCanvasHeight = 24
)

type Config struct {
	Record    string         `yaml:"record"`
	DataDir   string         `yaml:"data_dir"`
	OutputDir string         `yaml:"output_dir"`
	Digitize  DigitizeConfig `yaml:"digitize"`
	Filter    FilterConfig   `yaml:"filter"`
}

type DigitizeConfig struct {
	Picks        int `yaml:"picks"`
	CanvasWidth  int `yaml:"canvas_width"`
	CanvasHeight int `yaml:"canvas_height"`
}

// FilterConfig describes optional force-column conditioning before
// digitization. CutoffHz == 0 disables the low-pass.
type FilterConfig struct {
	CutoffHz float64 `yaml:"cutoff_hz"`
	Dt       float64 `yaml:"dt"`
	Baseline float64 `yaml:"baseline"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:   DefaultDataDir,
		OutputDir: DefaultOutputDir,
		Digitize: DigitizeConfig{
			Picks:        DefaultPicks,
			CanvasWidth:  DefaultCanvasWidth,
			CanvasHeight: DefaultCanvasHeight,
		},
	}
}

// Validate rejects settings the digitizer cannot honor. The envelope is an
// idealized quadrilateral, so picks is fixed at four.
func (c *Config) Validate() error {
	if c.Digitize.Picks != DefaultPicks {
		return fmt.Errorf("config: digitize picks must be %d, got %d", DefaultPicks, c.Digitize.Picks)
	}
	if c.Digitize.CanvasWidth <= 0 || c.Digitize.CanvasHeight <= 0 {
		return fmt.Errorf("config: canvas %dx%d not positive", c.Digitize.CanvasWidth, c.Digitize.CanvasHeight)
	}
	return nil
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
