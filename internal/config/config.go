// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the chartscale command's YAML configuration.
package config

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/aclements/go-chartscale/errdefs"
	"github.com/aclements/go-chartscale/scale"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the classification and axis options applied to a dataset.
type Config struct {
	// Steps is the number of classes the value column is broken into.
	Steps int `yaml:"steps"`
	// Ticks is the requested number of axis ticks.
	Ticks int `yaml:"ticks"`
	// Min and Max override the lower and upper bounds of the value axis.
	Min *float64 `yaml:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty"`
	// OmitZeroTick drops the 0 tick, which the baseline already marks.
	OmitZeroTick bool `yaml:"omitZeroTick"`
	// Palette is a ColorBrewer palette name, such as "Blues" or "RdYlGn".
	Palette string `yaml:"palette"`
	// LegendWidth is the width of the color legend, in pixels.
	LegendWidth float64 `yaml:"legendWidth"`
	// FontSize is the legend label size, in points.
	FontSize float64 `yaml:"fontSize"`
	// CacheTTL bounds how long break sets are reused.
	CacheTTL time.Duration `yaml:"cacheTTL"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Steps:        5,
		Ticks:        5,
		OmitZeroTick: true,
		Palette:      "Blues",
		LegendWidth:  320,
		FontSize:     12,
		CacheTTL:     5 * time.Minute,
	}
}

// Load reads the configuration in path over the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening config")
	}
	defer f.Close()
	cfg, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Read decodes YAML from r over the defaults and validates the result.
func Read(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, errors.WithHint(errdefs.InvalidArgumentf("parsing config: %v", err), "see internal/config.Config for the recognized fields")
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the options are usable.
func (c *Config) Validate() error {
	switch {
	case c.Steps < 2:
		return errors.WithHint(errdefs.InvalidArgumentf("steps must be >= 2, got %d", c.Steps), "a classification needs at least two classes")
	case c.Ticks < 1:
		return errdefs.InvalidArgumentf("ticks must be >= 1, got %d", c.Ticks)
	case c.Palette == "":
		return errdefs.InvalidArgumentf("palette must be set")
	case c.LegendWidth <= 0:
		return errdefs.InvalidArgumentf("legendWidth must be > 0, got %g", c.LegendWidth)
	case c.FontSize <= 0:
		return errdefs.InvalidArgumentf("fontSize must be > 0, got %g", c.FontSize)
	case c.CacheTTL < 0:
		return errdefs.InvalidArgumentf("cacheTTL must not be negative, got %v", c.CacheTTL)
	}
	return nil
}

// DomainOptions returns the axis overrides.
func (c *Config) DomainOptions() scale.DomainOptions {
	return scale.DomainOptions{Min: c.Min, Max: c.Max}
}
