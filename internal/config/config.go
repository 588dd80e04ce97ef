// Package config handles the CLI configuration file and dev key lookup.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	AppName        = "shoutcast-dir"
	AppDescription = "A command-line browser for the SHOUTcast Radio Directory"

	ConfigDir      = ".config/shoutcast-dir"
	ConfigFileName = "config.yml"

	// EnvDevKey overrides the config file's dev key when set.
	EnvDevKey = "SHOUTCAST_DEV_KEY"

	DefaultPageSize = 25
)

// AppVersion can be overridden at build time using ldflags:
// go build -ldflags "-X github.com/radiodir/shoutcast/internal/config.AppVersion=1.0.0"
var AppVersion = "dev"

// Config holds the persistent CLI settings: the dev key and the default
// filters applied when the matching flags are not given.
type Config struct {
	DevKey    string `yaml:"dev_key"`
	Bitrate   int    `yaml:"bitrate"`
	MediaType string `yaml:"media_type"`
	PageSize  int    `yaml:"page_size"`
}

func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	configPath := filepath.Join(home, ConfigDir, ConfigFileName)
	return configPath, nil
}

func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return DefaultConfig(), err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}

	return cfg, nil
}

// Save writes the configuration to disk atomically using temp file + rename.
func (c *Config) Save() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmpFile, err := os.CreateTemp(configDir, ".config-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpPath != "" {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, configPath); err != nil {
		return fmt.Errorf("failed to rename config file: %w", err)
	}

	tmpPath = "" // Prevent defer from removing the final file
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		PageSize: DefaultPageSize,
	}
}

// ResolveDevKey picks the dev key for a run: the -key flag wins, then the
// environment, then the config file. Returns an empty string when no key
// is available anywhere.
func (c *Config) ResolveDevKey(flagKey string) string {
	if flagKey != "" {
		return flagKey
	}
	if key := os.Getenv(EnvDevKey); key != "" {
		return key
	}
	return c.DevKey
}
