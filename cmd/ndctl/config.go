package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dashflow-io/ndarray/internal/indexmode"
	"github.com/dashflow-io/ndarray/internal/layout"
)

// tuningConfig is the optional YAML file "ndctl describe" reads (via its
// --config flag) for the default order and index mode. Flags passed on
// the command line always override a value loaded from this file. The
// block_size_bytes entry is parsed but not applied anywhere; the kernel's
// cache-block size is fixed.
type tuningConfig struct {
	BlockSizeBytes int    `yaml:"block_size_bytes"`
	DefaultOrder   string `yaml:"default_order"`
	DefaultMode    string `yaml:"default_mode"`
}

func loadTuningConfig(path string) (tuningConfig, error) {
	var cfg tuningConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c tuningConfig) order(flagOrder string) (layout.Order, error) {
	s := flagOrder
	if s == "" {
		s = c.DefaultOrder
	}
	return parseOrder(s)
}

func (c tuningConfig) mode(flagMode string) (indexmode.Mode, error) {
	s := flagMode
	if s == "" {
		s = c.DefaultMode
	}
	return parseMode(s)
}
