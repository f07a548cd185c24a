// Package config loads the demo configuration from TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is returned by Validate for values the demo cannot use.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full demo configuration.
type Config struct {
	Curve     Curve     `toml:"curve"`
	Clip      Clip      `toml:"clip"`
	Generator Generator `toml:"generator"`
	Preview   Preview   `toml:"preview"`
}

// Curve configures the composite Bezier curve.
type Curve struct {
	SamplesPerSegment int `toml:"samples_per_segment"`

	// Edits are applied in order on top of the canonical layout, exactly as
	// interactive edits would be.
	Edits []PointEdit `toml:"edit"`
}

// PointEdit moves one control point.
type PointEdit struct {
	Index int     `toml:"index"`
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
	Z     float64 `toml:"z"`
}

// Clip configures the clip window. Degenerate windows are allowed.
type Clip struct {
	Left   float64 `toml:"left"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
	Top    float64 `toml:"top"`
}

// Generator configures the random segment batch.
type Generator struct {
	Count int     `toml:"count"`
	Min   float64 `toml:"min"`
	Max   float64 `toml:"max"`

	// Seed makes batches reproducible. Zero means seed from system entropy.
	Seed uint64 `toml:"seed"`
}

// Preview configures the rendered images.
type Preview struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	CurvePNG  string `toml:"curve_png"`
	ClipPNG   string `toml:"clip_png"`
	ShowIndex bool   `toml:"show_index"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Curve: Curve{SamplesPerSegment: 50},
		Clip:  Clip{Left: -3, Right: 3, Bottom: -3, Top: 3},
		Generator: Generator{
			Count: 15,
			Min:   -5,
			Max:   5,
		},
		Preview: Preview{
			Width:     800,
			Height:    600,
			CurvePNG:  "bezier.png",
			ClipPNG:   "clipping.png",
			ShowIndex: true,
		},
	}
}

// Parse decodes TOML data on top of Default and validates the result.
// Keys missing from data keep their default values; unknown keys are an error.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Config{}, fmt.Errorf("config: line %d column %d: %w", row, col, err)
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the TOML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that would otherwise fail later.
// Clip windows are not checked: a degenerate window is valid input.
func (c Config) Validate() error {
	if c.Curve.SamplesPerSegment < 1 {
		return fmt.Errorf("%w: curve.samples_per_segment = %d, want >= 1", ErrInvalid, c.Curve.SamplesPerSegment)
	}
	for i, e := range c.Curve.Edits {
		if e.Index < 0 || e.Index > 9 {
			return fmt.Errorf("%w: curve.edit[%d].index = %d, want 0..9", ErrInvalid, i, e.Index)
		}
	}
	if c.Generator.Count < 0 {
		return fmt.Errorf("%w: generator.count = %d, want >= 0", ErrInvalid, c.Generator.Count)
	}
	if c.Generator.Min > c.Generator.Max {
		return fmt.Errorf("%w: generator.min %g > generator.max %g", ErrInvalid, c.Generator.Min, c.Generator.Max)
	}
	if c.Preview.Width <= 0 || c.Preview.Height <= 0 {
		return fmt.Errorf("%w: preview size %dx%d", ErrInvalid, c.Preview.Width, c.Preview.Height)
	}
	return nil
}

// Marshal encodes the configuration as TOML.
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
