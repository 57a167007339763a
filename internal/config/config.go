package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/newthinker/movingavg/internal/core"
	"github.com/spf13/viper"
)

type Config struct {
	Log        LogConfig                  `mapstructure:"log"`
	Metrics    MetricsConfig              `mapstructure:"metrics"`
	Indicators map[string]IndicatorConfig `mapstructure:"indicators"`
}

type LogConfig struct {
	Development bool   `mapstructure:"development"`
	Level       string `mapstructure:"level"`
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

// IndicatorConfig describes one configured indicator instance.
// For "ema", Alpha wins over Window/WindowType when set.
type IndicatorConfig struct {
	Kind       string  `mapstructure:"kind"` // "sma" or "ema"
	Window     int     `mapstructure:"window"`
	Alpha      float64 `mapstructure:"alpha"`
	WindowType string  `mapstructure:"window_type"` // span, com, halflife, alpha
}

// Load reads configuration from file
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Support environment variable overrides
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	defaults := Defaults()
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("metrics.enabled", defaults.Metrics.Enabled)
	v.SetDefault("metrics.namespace", defaults.Metrics.Namespace)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Expand environment variables in string values
	for _, key := range v.AllKeys() {
		val := v.GetString(key)
		if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
			envKey := strings.TrimSuffix(strings.TrimPrefix(val, "${"), "}")
			v.Set(key, os.Getenv(envKey))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Defaults returns a config with sensible defaults
func Defaults() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "movingavg",
		},
		Indicators: map[string]IndicatorConfig{},
	}
}

// Validate checks the configuration for errors.
// Window type names are resolved later by the indicator constructors.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error", "dpanic", "panic", "fatal":
	default:
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("unknown log level %q", c.Log.Level))
	}

	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return core.WrapError(core.ErrConfigMissing,
			fmt.Errorf("metrics namespace required when metrics are enabled"))
	}

	for name, ind := range c.Indicators {
		if err := ind.validate(); err != nil {
			return core.WrapError(core.ErrConfigInvalid,
				fmt.Errorf("indicator %s: %w", name, err))
		}
	}

	return nil
}

func (ic IndicatorConfig) validate() error {
	switch ic.Kind {
	case "sma":
		if ic.Window < 2 {
			return fmt.Errorf("sma window must be at least 2, got %d", ic.Window)
		}
	case "ema":
		if ic.Alpha != 0 {
			if ic.Alpha < 0 || ic.Alpha > 1 {
				return fmt.Errorf("ema alpha must be in (0, 1], got %f", ic.Alpha)
			}
			return nil
		}
		if ic.Window < 2 {
			return fmt.Errorf("ema needs alpha or a window of at least 2, got window %d", ic.Window)
		}
	case "":
		return fmt.Errorf("kind is required")
	default:
		return fmt.Errorf("unknown kind %q", ic.Kind)
	}
	return nil
}
