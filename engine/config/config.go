package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DefaultOutputDir is where the mod expects item textures.
const DefaultOutputDir = "src/main/resources/assets/combinedpe/textures/item"

// Config holds the generator settings. The defaults reproduce the fixed
// behavior: icons only, written to DefaultOutputDir.
type Config struct {
	OutputDir    string `env:"ICONS_OUTPUT_DIR"    envDefault:"src/main/resources/assets/combinedpe/textures/item"`
	LogLevel     string `env:"ICONS_LOG_LEVEL"     envDefault:"info"`
	Manifest     bool   `env:"ICONS_MANIFEST"      envDefault:"false"`
	Preview      bool   `env:"ICONS_PREVIEW"       envDefault:"false"`
	PreviewScale int    `env:"ICONS_PREVIEW_SCALE" envDefault:"8"`
	Show         bool   `env:"ICONS_SHOW"          envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.PreviewScale < 1 {
		return Config{}, fmt.Errorf("ICONS_PREVIEW_SCALE must be at least 1, got %d", cfg.PreviewScale)
	}
	return cfg, nil
}
