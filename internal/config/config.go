// Package config loads quality-assessment configuration from a TOML file
// layered with environment-variable overrides, mirroring the precedence and
// structure of specmcp's own config loader: environment variables beat the
// config file, which beats built-in defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/artifactqa/quality-assessment/internal/recommend"
)

// Config holds all configuration for the quality-assessment pipeline and CLI.
type Config struct {
	Dashboard      DashboardConfig      `toml:"dashboard"`
	Recommendation RecommendationConfig `toml:"recommendation"`
	Context        ContextConfig        `toml:"context"`
	Log            LogConfig            `toml:"log"`
}

// DashboardConfig controls the rolling snapshot history.
type DashboardConfig struct {
	MaxSnapshots int `toml:"max_snapshots"`
}

// RecommendationConfig controls recommendation aggregation.
type RecommendationConfig struct {
	// TopN is how many recommendations TopPriority returns.
	TopN int `toml:"top_n"`
}

// ContextConfig is the default project context applied when the CLI isn't
// given a more specific one. Any field left empty falls back to the
// recommend package's own zero-value handling (ContextStrategy no-ops on a
// nil context entirely; here it's always non-nil, just possibly blank).
type ContextConfig struct {
	Domain      string `toml:"domain"`
	Stage       string `toml:"stage"`
	TeamSize    string `toml:"team_size"`
	Criticality string `toml:"criticality"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// Load creates a Config by reading from a TOML config file and environment
// variables. Precedence: environment variables > config file > defaults.
//
// Config file search order (first found wins):
//  1. Path passed via configPath parameter (from --config flag)
//  2. QUALITYCLI_CONFIG environment variable
//  3. ./qualitycli.toml (current directory)
//  4. ~/.config/qualitycli/qualitycli.toml (XDG-style)
//
// All fields are optional in the config file. Environment variables always
// override file values.
func Load(configPath string) (*Config, error) {
	cfg := &Config{
		Dashboard: DashboardConfig{
			MaxSnapshots: 100,
		},
		Recommendation: RecommendationConfig{
			TopN: 10,
		},
		Context: ContextConfig{
			Domain:      "general",
			Stage:       "mvp",
			TeamSize:    "small",
			Criticality: "medium",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if err := cfg.loadFile(configPath); err != nil {
		return nil, err
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile finds and parses the TOML config file. If no file is found,
// this is a no-op (config file is optional).
func (c *Config) loadFile(configPath string) error {
	path := resolveConfigPath(configPath)
	if path == "" {
		return nil // no config file found; rely on defaults + env
	}

	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	return nil
}

// resolveConfigPath determines which config file to use. Returns empty
// string if no config file is found (config file is optional).
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit // caller wants this file; let DecodeFile report if missing
	}

	if p := os.Getenv("QUALITYCLI_CONFIG"); p != "" {
		return p
	}

	if _, err := os.Stat("qualitycli.toml"); err == nil {
		return "qualitycli.toml"
	}

	if home, err := os.UserHomeDir(); err == nil {
		p := home + "/.config/qualitycli/qualitycli.toml"
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// applyEnv overlays environment variables on top of existing config values.
// An env var only takes effect if it is non-empty.
func (c *Config) applyEnv() {
	if v := os.Getenv("QUALITYCLI_MAX_SNAPSHOTS"); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil && n > 0 {
			c.Dashboard.MaxSnapshots = n
		}
	}
	if v := os.Getenv("QUALITYCLI_TOP_N"); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil && n > 0 {
			c.Recommendation.TopN = n
		}
	}

	envOverride("QUALITYCLI_CONTEXT_DOMAIN", &c.Context.Domain)
	envOverride("QUALITYCLI_CONTEXT_STAGE", &c.Context.Stage)
	envOverride("QUALITYCLI_CONTEXT_TEAM_SIZE", &c.Context.TeamSize)
	envOverride("QUALITYCLI_CONTEXT_CRITICALITY", &c.Context.Criticality)

	envOverride("QUALITYCLI_LOG_LEVEL", &c.Log.Level)
}

// Validate checks that required fields hold recognized values.
func (c *Config) Validate() error {
	if c.Dashboard.MaxSnapshots <= 0 {
		return fmt.Errorf("dashboard.max_snapshots must be positive, got %d", c.Dashboard.MaxSnapshots)
	}
	if c.Recommendation.TopN <= 0 {
		return fmt.Errorf("recommendation.top_n must be positive, got %d", c.Recommendation.TopN)
	}
	return nil
}

// ProjectContext converts the configured defaults into a recommend.ProjectContext.
func (c *Config) ProjectContext() *recommend.ProjectContext {
	return &recommend.ProjectContext{
		Domain:      recommend.Domain(c.Context.Domain),
		Stage:       recommend.Stage(c.Context.Stage),
		TeamSize:    recommend.TeamSize(c.Context.TeamSize),
		Criticality: recommend.Criticality(c.Context.Criticality),
	}
}

// envOverride sets *dst to the value of the named env var, if it is non-empty.
func envOverride(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
