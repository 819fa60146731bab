package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ensigniasec/countdown/internal/validate"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "~/.config/countdown/config.yaml"

// Config is the user configuration for the countdown screen.
type Config struct {
	// Duration is the picker's initial value.
	Duration     time.Duration `yaml:"duration" validate:"min=1s,max=23h59m59s,whole_seconds"`
	TickInterval time.Duration `yaml:"tick_interval" validate:"min=1ms"`
	// PickerStep is added or removed by the picker's +/- keys.
	PickerStep time.Duration `yaml:"picker_step" validate:"min=1s,max=12h,whole_seconds"`
	Sound      Sound         `yaml:"sound"`
	Theme      Theme         `yaml:"theme"`
	LogLevel   string        `yaml:"log_level" validate:"oneof=panic fatal error warn warning info debug trace"`
}

// Sound configures the completion alert.
type Sound struct {
	Bell    bool          `yaml:"bell"`
	Command []string      `yaml:"command,omitempty" validate:"omitempty,dive,required"`
	Timeout time.Duration `yaml:"timeout" validate:"min=0"`
}

// Theme holds the colours used by the terminal UI.
type Theme struct {
	Accent string `yaml:"accent" validate:"required,hexcolor"`
	Muted  string `yaml:"muted" validate:"required,hexcolor"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Duration:     time.Minute,
		TickInterval: time.Second,
		PickerStep:   time.Minute,
		Sound: Sound{
			Bell:    true,
			Timeout: 5 * time.Second,
		},
		Theme: Theme{
			Accent: "#FF5F87",
			Muted:  "#626262",
		},
		LogLevel: "info",
	}
}

// Load reads the YAML file at path on top of Default. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	expandedPath, err := ExpandTilde(path)
	if err != nil {
		return cfg, err
	}

	logrus.Debug("Loading config file from: ", expandedPath)
	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.Debugf("no config at %s; using defaults", expandedPath)
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", expandedPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", expandedPath, err)
	}
	return cfg, nil
}

// Validate checks every field constraint.
func (c Config) Validate() error {
	return validate.Struct(c)
}

// Level returns the configured logrus level.
func (c Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}

// Seconds returns Duration as whole seconds.
func (c Config) Seconds() int {
	return int(c.Duration / time.Second)
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// ExpandTilde expands the tilde in a path to the user's home directory.
func ExpandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}
