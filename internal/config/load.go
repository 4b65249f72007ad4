package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// LoadFile reads and parses the configuration from a YAML file.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	cfg := Default()
	if err := mapstructure.Decode(rawConfig, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration with every field at its default value.
func Default() *Config {
	cfg := &Config{ClusterEnabled: true}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in unset fields after decoding.
func applyDefaults(cfg *Config) {
	if cfg.Pool == "" {
		cfg.Pool = "rbd"
	}
	if cfg.ClusterConf == "" {
		cfg.ClusterConf = "/etc/ceph/ceph.conf"
	}
	if cfg.DeprecatedAfter == "" {
		cfg.DeprecatedAfter = "1.6.0"
	}
	if cfg.Tools.Ceph == "" {
		cfg.Tools.Ceph = "ceph"
	}
	if cfg.Tools.RBD == "" {
		cfg.Tools.RBD = "rbd"
	}
	if cfg.Tools.Kubectl == "" {
		cfg.Tools.Kubectl = "kubectl"
	}
}
