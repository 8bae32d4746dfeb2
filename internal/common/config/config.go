package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Target TargetConfig `yaml:"target"`
	News   NewsConfig   `yaml:"news"`
}

// TargetConfig describes the target system the news is evaluated against
type TargetConfig struct {
	Root     string `yaml:"root"`      // target root, usually "/"
	Profile  string `yaml:"profile"`   // make.profile symlink path
	MakeConf string `yaml:"make_conf"` // make.conf path
	PkgDB    string `yaml:"pkg_db"`    // installed-package database root
}

// NewsConfig holds news tracking settings
type NewsConfig struct {
	Dir       string `yaml:"dir"`        // news dir relative to a repository root
	UnreadDir string `yaml:"unread_dir"` // where the unread/read ledgers live
	Repos     string `yaml:"repos"`      // repository registry (repos.toml) path
}

// Default returns the configuration used when no config file exists yet
func Default() *Config {
	return &Config{
		Target: TargetConfig{
			Root:     "/",
			Profile:  "/etc/portage/make.profile",
			MakeConf: "/etc/portage/make.conf",
			PkgDB:    "/var/db/pkg",
		},
		News: NewsConfig{
			Dir:       "metadata/news",
			UnreadDir: "/var/lib/benews/news",
			Repos:     "/etc/benews/repos.toml",
		},
	}
}

// ConfigPaths returns all possible config file paths in priority order
// 1. ~/.config/benews/config.yaml (XDG standard - priority)
// 2. ~/.benews/config.yaml (legacy fallback)
func ConfigPaths() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	// Check XDG_CONFIG_HOME first, fallback to ~/.config
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}

	return []string{
		filepath.Join(xdgConfig, "benews", "config.yaml"),
		filepath.Join(home, ".benews", "config.yaml"),
	}, nil
}

// DefaultConfigPath returns the default config file path (XDG standard)
func DefaultConfigPath() (string, error) {
	paths, err := ConfigPaths()
	if err != nil {
		return "", err
	}
	return paths[0], nil
}

// FindConfigPath returns the first existing config file path
// Returns the default path if no config file exists yet
func FindConfigPath() (string, error) {
	paths, err := ConfigPaths()
	if err != nil {
		return "", err
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	// No config exists, return default (XDG) path for creation
	return paths[0], nil
}

// Load reads configuration from the first available config file
// Priority: ~/.config/benews/config.yaml > ~/.benews/config.yaml
func Load() (*Config, error) {
	configPath, err := FindConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads configuration from a specific file path. A missing file
// creates and returns the default configuration.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if saveErr := cfg.SaveTo(path); saveErr != nil {
				return nil, saveErr
			}
			return cfg, nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to the default config file
func (c *Config) Save() error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes configuration to a specific file path
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
