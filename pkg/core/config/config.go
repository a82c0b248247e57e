// Package config loads projector settings from config/projector.yaml.
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"roi_projector/pkg/core/roi"

	"gopkg.in/yaml.v2"
)

const DefaultPath = "config/projector.yaml"

// Diagnostics go to stderr so they never mix with rendered output.
var logOut io.Writer = os.Stderr

type Config struct {
	Defaults Defaults `yaml:"defaults"`
	Seed     uint64   `yaml:"seed"`   // 0 = seed from the clock
	Format   string   `yaml:"format"` // text, markdown, html, json
}

// Defaults are the control values a new session starts with.
type Defaults struct {
	Mode             string  `yaml:"mode"`
	AreaType         string  `yaml:"area_type"`
	InvitedMembers   int     `yaml:"invited_members"`
	InviteMultiplier int     `yaml:"invite_multiplier"`
	MonthlySpend     float64 `yaml:"monthly_spend"`
}

// Default mirrors the controls of a freshly opened widget.
func Default() Config {
	in := roi.DefaultInputs()
	return Config{
		Defaults: Defaults{
			Mode:             string(in.Mode),
			AreaType:         string(in.AreaType),
			InvitedMembers:   in.InvitedMembers,
			InviteMultiplier: in.InviteMultiplier,
			MonthlySpend:     in.MonthlySpend,
		},
		Format: "text",
	}
}

// Load reads path over the built-in defaults. A missing file is not an
// error; fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(logOut, "[CONFIG] %s not found, using built-in defaults\n", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from the environment (ROI_SEED, ROI_FORMAT).
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ROI_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ROI_SEED %q: %w", v, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv("ROI_FORMAT"); v != "" {
		c.Format = v
	}
	return nil
}

// Inputs converts the defaults into engine inputs, clamped to the slider
// bounds.
func (c Config) Inputs() (roi.Inputs, error) {
	mode, err := roi.ParseMode(c.Defaults.Mode)
	if err != nil {
		return roi.Inputs{}, fmt.Errorf("defaults.mode: %w", err)
	}
	area, err := roi.ParseAreaType(c.Defaults.AreaType)
	if err != nil {
		return roi.Inputs{}, fmt.Errorf("defaults.area_type: %w", err)
	}
	in := roi.Inputs{
		Mode:             mode,
		AreaType:         area,
		InvitedMembers:   c.Defaults.InvitedMembers,
		InviteMultiplier: c.Defaults.InviteMultiplier,
		MonthlySpend:     c.Defaults.MonthlySpend,
	}
	return in.Clamp(), nil
}

// Sampler builds the land value sampler for the configured seed.
func (c Config) Sampler() *roi.LandValueSampler {
	if c.Seed == 0 {
		return roi.NewLandValueSampler(nil)
	}
	return roi.NewSeededSampler(c.Seed)
}
