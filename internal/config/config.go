package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds the user preferences of gcm.
type Config struct {
	Prompt    string `mapstructure:"prompt" yaml:"prompt"`
	HintColor string `mapstructure:"hint_color" yaml:"hint_color"`
	Spinner   bool   `mapstructure:"spinner" yaml:"spinner"`
}

const (
	DefaultPrompt     = "❯ "
	DefaultHintColor  = "8"
	DefaultSpinner    = true
	DefaultConfigName = "config"
	DefaultConfigDir  = "gcm"
	EnvPrefix         = "GCM"
)

// Keys lists the configuration keys accepted by SetConfigValue.
var Keys = []string{"prompt", "hint_color", "spinner"}

// ErrUnknownKey is returned when setting a key that is not in Keys.
var ErrUnknownKey = errors.New("unknown configuration key")

func setDefaults() {
	viper.SetDefault("prompt", DefaultPrompt)
	viper.SetDefault("hint_color", DefaultHintColor)
	viper.SetDefault("spinner", DefaultSpinner)
}

// ConfigDir returns the directory holding the default config file,
// $XDG_CONFIG_HOME/gcm or ~/.config/gcm.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, DefaultConfigDir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(home, ".config", DefaultConfigDir), nil
}

// InitConfig loads cfgFile, or the default config file if cfgFile is empty,
// creating it with defaults when it does not exist.
// GCM_ prefixed environment variables override file values.
func InitConfig(cfgFile string) error {
	configPath := cfgFile
	if configPath == "" {
		dir, err := ConfigDir()
		if err != nil {
			return err
		}
		configPath = filepath.Join(dir, DefaultConfigName+".yaml")
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
			return fmt.Errorf("failed to create configuration directory: %w", err)
		}
		if err := viper.WriteConfigAs(configPath); err != nil {
			return fmt.Errorf("failed to write configuration file: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read configuration file: %w", err)
	}

	// The file is user-owned configuration; keep it private.
	if err := os.Chmod(configPath, 0o600); err != nil {
		return fmt.Errorf("failed to set configuration file permissions: %w", err)
	}
	return nil
}

// GetConfig returns the effective configuration.
func GetConfig() (*Config, error) {
	setDefaults()
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return cfg, nil
}

// SetConfigValue sets key to value, converting value
// to the type of the key.
func SetConfigValue(key, value string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("%w: %s (valid keys: %v)", ErrUnknownKey, key, Keys)
	}

	if key == "spinner" {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
		viper.Set(key, b)
		return nil
	}

	viper.Set(key, value)
	return nil
}

// SaveConfig writes the current configuration to the config file.
func SaveConfig() error {
	return viper.WriteConfig()
}

// ConfigFileUsed returns the path of the loaded config file.
func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}
