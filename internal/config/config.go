package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/signalnine/artbench/internal/export"
	"github.com/signalnine/artbench/internal/plot"
)

const (
	DefaultResultsDir    = "./results"
	DefaultExportPath    = export.DefaultPath
	DefaultBarWidth      = 30
	DefaultScatterHeight = 10
	DefaultScatterWidth  = 40
)

type Config struct {
	Results Results     `yaml:"results"`
	Export  Export      `yaml:"export"`
	Charts  Charts      `yaml:"charts"`
	Glyphs  []GlyphRule `yaml:"glyphs"`
}

type Results struct {
	Dir string `yaml:"dir"`
}

type Export struct {
	Path string `yaml:"path"`
}

type Charts struct {
	BarWidth      int `yaml:"bar_width"`
	ScatterHeight int `yaml:"scatter_height"`
	ScatterWidth  int `yaml:"scatter_width"`
}

// GlyphRule assigns a scatter-plot marker to models whose name contains
// Match. Rules are tried in order.
type GlyphRule struct {
	Match string `yaml:"match"`
	Glyph string `yaml:"glyph"`
}

// Default is the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	if err := validate(cfg); err != nil {
		panic(err)
	}
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func validate(cfg *Config) error {
	if cfg.Results.Dir == "" {
		cfg.Results.Dir = DefaultResultsDir
	}
	if cfg.Export.Path == "" {
		cfg.Export.Path = DefaultExportPath
	}
	c := &cfg.Charts
	if c.BarWidth < 0 {
		return fmt.Errorf("charts.bar_width must not be negative")
	}
	if c.BarWidth == 0 {
		c.BarWidth = DefaultBarWidth
	}
	if c.ScatterHeight == 0 {
		c.ScatterHeight = DefaultScatterHeight
	}
	if c.ScatterWidth == 0 {
		c.ScatterWidth = DefaultScatterWidth
	}
	if c.ScatterHeight < 2 || c.ScatterWidth < 2 {
		return fmt.Errorf("charts: scatter grid must be at least 2x2, got %dx%d", c.ScatterHeight, c.ScatterWidth)
	}
	if len(cfg.Glyphs) == 0 {
		for _, r := range plot.DefaultRules {
			cfg.Glyphs = append(cfg.Glyphs, GlyphRule{Match: r.Match, Glyph: r.Glyph})
		}
	}
	for i, g := range cfg.Glyphs {
		if g.Match == "" {
			return fmt.Errorf("glyph %d: match is required", i)
		}
		if g.Glyph == "" {
			return fmt.Errorf("glyph %q: glyph is required", g.Match)
		}
		if runewidth.StringWidth(g.Glyph) != 1 {
			return fmt.Errorf("glyph %q: marker %q must be a single column wide", g.Match, g.Glyph)
		}
	}
	return nil
}

// Rules converts the glyph table for the scatter renderer.
func (c *Config) Rules() []plot.Rule {
	rules := make([]plot.Rule, 0, len(c.Glyphs))
	for _, g := range c.Glyphs {
		rules = append(rules, plot.Rule{Match: g.Match, Glyph: g.Glyph})
	}
	return rules
}
