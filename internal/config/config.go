package config

import "github.com/spf13/viper"

// Format names for rendered timelines.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds all runtime configuration for a dasha invocation.
// Values are populated from .dasha.yaml, DASHA_* env vars, and CLI flags.
type Config struct {
	Depth  int    `mapstructure:"depth"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("depth", 2)
	viper.SetDefault("format", FormatText)
	viper.SetDefault("color", true)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
