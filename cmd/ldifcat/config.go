package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// fileConfig holds defaults loaded from the TOML config file. Flags set
// on the command line always win.
type fileConfig struct {
	Lenient  bool   `toml:"lenient"`
	Encoding string `toml:"encoding"`
	Wrap     int    `toml:"wrap"`
}

// defaultConfigPath returns ~/.ldifcat/config.toml.
func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ldifcat", "config.toml"), nil
}

// loadConfig reads the config file. A missing default config file is not
// an error; a missing explicitly requested one is.
func loadConfig(path string) (*fileConfig, error) {
	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return &fileConfig{}, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return &fileConfig{}, nil
		}
		return nil, err
	}

	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// applyConfig fills flag values from the config file for flags the user
// did not set explicitly.
func applyConfig(cmd *cobra.Command, cfg *fileConfig) {
	flags := cmd.Flags()
	if cfg.Lenient && !flags.Changed("lenient") {
		lenient = true
	}
	if cfg.Encoding != "" && !flags.Changed("encoding") {
		encName = cfg.Encoding
	}
	if cfg.Wrap > 0 && !flags.Changed("wrap") {
		wrap = cfg.Wrap
	}
}
