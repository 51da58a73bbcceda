package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/papapumpkin/mythoscape/internal/creature"
)

// Config holds all runtime configuration for a journal session.
// Values are populated from .mythoscape.yaml, MYTHOSCAPE_* env vars, and CLI flags.
type Config struct {
	StateFile     string            `mapstructure:"state_file"`
	MetaphorsFile string            `mapstructure:"metaphors_file"`
	AssetsDir     string            `mapstructure:"assets_dir"`
	Assets        map[string]string `mapstructure:"assets"`
	TelemetryFile string            `mapstructure:"telemetry_file"`
	Seed          uint64            `mapstructure:"seed"`
	Verbose       bool              `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("state_file", "mythoscape.json")
	viper.SetDefault("metaphors_file", "")
	viper.SetDefault("assets_dir", "assets")
	viper.SetDefault("telemetry_file", "")
	viper.SetDefault("seed", 0)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// AssetPaths returns the per-glow asset overrides keyed by glow. Keys that
// are not glow names are ignored.
func (c Config) AssetPaths() map[creature.Glow]string {
	out := make(map[creature.Glow]string, len(c.Assets))
	for k, v := range c.Assets {
		g := creature.Glow(k)
		if g.Known() && v != "" {
			out[g] = v
		}
	}
	return out
}
