// Package config holds the application configuration: defaults, YAML file
// loading, GRIDGAMES_* environment overrides and validation.
package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/numcog/gridgames/internal/game/controller"
)

// Config holds all configuration for the application
type Config struct {
	Log  LogConfig  `mapstructure:"log"`
	Game GameConfig `mapstructure:"game"`
	Play PlayConfig `mapstructure:"play"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GameConfig holds the default game settings used when no preset is named
type GameConfig struct {
	Variant      string `mapstructure:"variant"`
	GridRows     int    `mapstructure:"grid_rows"`
	GridCols     int    `mapstructure:"grid_cols"`
	PixelDensity int    `mapstructure:"pixel_density"`
	TargLow      int    `mapstructure:"targ_low"`
	TargHigh     int    `mapstructure:"targ_high"`
	Harsh        bool   `mapstructure:"harsh"`
	HoldOuts     []int  `mapstructure:"hold_outs"`
}

// PlayConfig holds demo-runner settings
type PlayConfig struct {
	Episodes    int    `mapstructure:"episodes"`
	Seed        int64  `mapstructure:"seed"`
	Parallelism int    `mapstructure:"parallelism"`
	PresetsFile string `mapstructure:"presets_file"`
	Preset      string `mapstructure:"preset"`
	SnapshotDir string `mapstructure:"snapshot_dir"`
	RecordFile  string `mapstructure:"record_file"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("game.variant", "even_line_match")
	v.SetDefault("game.grid_rows", 31)
	v.SetDefault("game.grid_cols", 31)
	v.SetDefault("game.pixel_density", 1)
	v.SetDefault("game.targ_low", 1)
	v.SetDefault("game.targ_high", 10)
	v.SetDefault("game.harsh", true)
	v.SetDefault("game.hold_outs", []int{})

	v.SetDefault("play.episodes", 10)
	v.SetDefault("play.seed", 123456)
	v.SetDefault("play.parallelism", 1)
	v.SetDefault("play.presets_file", "")
	v.SetDefault("play.preset", "")
	v.SetDefault("play.snapshot_dir", "")
	v.SetDefault("play.record_file", "")
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/gridgames")
	}

	v.SetEnvPrefix("GRIDGAMES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			// Specific file requested but not found - that's ok, use defaults
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the loaded configuration; Init must have been called
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call config.Init first")
	}
	return cfg
}

// Validate checks the configuration for invalid combinations
func Validate(c *Config) error {
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q (want console or json)", c.Log.Format)
	}
	if _, err := c.Game.ControllerConfig(); err != nil {
		return err
	}
	if c.Play.Episodes < 1 {
		return fmt.Errorf("play.episodes must be positive, got %d", c.Play.Episodes)
	}
	if c.Play.Parallelism < 1 {
		return fmt.Errorf("play.parallelism must be positive, got %d", c.Play.Parallelism)
	}
	return nil
}

// ControllerConfig converts the game section into a validated controller
// configuration
func (g GameConfig) ControllerConfig() (controller.Config, error) {
	variant, err := controller.ParseVariant(g.Variant)
	if err != nil {
		return controller.Config{}, err
	}
	cc := controller.Config{
		Variant:      variant,
		GridRows:     g.GridRows,
		GridCols:     g.GridCols,
		PixelDensity: g.PixelDensity,
		TargLow:      g.TargLow,
		TargHigh:     g.TargHigh,
		Harsh:        g.Harsh,
		HoldOuts:     g.HoldOuts,
	}
	if err := cc.Validate(); err != nil {
		return controller.Config{}, err
	}
	return cc, nil
}

// Watch reloads the configuration when the file changes and invokes the
// callback with the fresh config. Invalid edits are logged and skipped.
func Watch(onChange func(*Config)) {
	if v == nil {
		panic("config not initialized, call config.Init first")
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		fresh := &Config{}
		if err := v.Unmarshal(fresh); err != nil {
			log.Error().Err(err).Str("file", e.Name).Msg("ignoring config change: decode failed")
			return
		}
		if err := Validate(fresh); err != nil {
			log.Error().Err(err).Str("file", e.Name).Msg("ignoring config change: validation failed")
			return
		}
		cfg = fresh
		log.Info().Str("file", e.Name).Msg("configuration reloaded")
		if onChange != nil {
			onChange(cfg)
		}
	})
	v.WatchConfig()
}
