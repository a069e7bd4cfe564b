// Package config provides Viper-based configuration loading for the DPS
// calculator.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DataConfig holds reference data settings.
type DataConfig struct {
	// Dir is the directory holding equipment.yaml, prayers.yaml,
	// spells.yaml, and enemies.yaml.
	Dir string `mapstructure:"dir"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// LevelsConfig holds the player's skill levels.
type LevelsConfig struct {
	Hitpoints int `mapstructure:"hitpoints"`
	Attack    int `mapstructure:"attack"`
	Strength  int `mapstructure:"strength"`
	Defence   int `mapstructure:"defence"`
	Ranged    int `mapstructure:"ranged"`
	Magic     int `mapstructure:"magic"`
	Prayer    int `mapstructure:"prayer"`
}

// LoadoutConfig describes the attacking player and the target to
// evaluate.
type LoadoutConfig struct {
	// Equipment lists item names to equip, resolved against the data dir.
	Equipment []string `mapstructure:"equipment"`
	// Prayers lists prayer names to activate.
	Prayers []string `mapstructure:"prayers"`
	// Spell is the optional spell name to cast.
	Spell string `mapstructure:"spell"`
	// StyleIndex selects a combat option of the equipped weapon.
	StyleIndex int          `mapstructure:"style_index"`
	Levels     LevelsConfig `mapstructure:"levels"`
	// Enemy is the name of the target enemy.
	Enemy string `mapstructure:"enemy"`
}

// Config is the top-level application configuration.
type Config struct {
	Data    DataConfig    `mapstructure:"data"`
	Logging LoggingConfig `mapstructure:"logging"`
	Loadout LoadoutConfig `mapstructure:"loadout"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error
// describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateData(c.Data); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLoadout(c.Loadout); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateData(d DataConfig) error {
	if d.Dir == "" {
		return errors.New("data.dir must not be empty")
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateLoadout(l LoadoutConfig) error {
	var errs []string
	if l.Enemy == "" {
		errs = append(errs, "loadout.enemy must not be empty")
	}
	if l.StyleIndex < 0 {
		errs = append(errs, fmt.Sprintf("loadout.style_index must be >= 0, got %d", l.StyleIndex))
	}
	for name, level := range map[string]int{
		"hitpoints": l.Levels.Hitpoints,
		"attack":    l.Levels.Attack,
		"strength":  l.Levels.Strength,
		"defence":   l.Levels.Defence,
		"ranged":    l.Levels.Ranged,
		"magic":     l.Levels.Magic,
		"prayer":    l.Levels.Prayer,
	} {
		if level < 1 || level > 99 {
			errs = append(errs, fmt.Sprintf("loadout.levels.%s must be 1-99, got %d", name, level))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with DPSCALC_ prefix
	v.SetEnvPrefix("DPSCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.dir", "data")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("loadout.style_index", 0)
	v.SetDefault("loadout.levels.hitpoints", 10)
	v.SetDefault("loadout.levels.attack", 1)
	v.SetDefault("loadout.levels.strength", 1)
	v.SetDefault("loadout.levels.defence", 1)
	v.SetDefault("loadout.levels.ranged", 1)
	v.SetDefault("loadout.levels.magic", 1)
	v.SetDefault("loadout.levels.prayer", 1)
}
