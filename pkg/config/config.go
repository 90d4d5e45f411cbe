// Package config loads and saves ModuleConfig files. Files are YAML; missing
// or out-of-range fields come back clamped rather than rejected, matching the
// core's tolerance for transient invalid input.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/plankworks/cabd/pkg/model"
)

// DefaultFileName is the config file looked for when none is given.
const DefaultFileName = "module.yaml"

// Load reads a ModuleConfig from a YAML file. Unset numeric fields are
// filled from the defaults, then the whole config is clamped.
func Load(path string) (model.ModuleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.ModuleConfig{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes into a clamped config.
func Parse(data []byte) (model.ModuleConfig, error) {
	cfg := model.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return model.ModuleConfig{}, fmt.Errorf("parse config: %w", err)
	}
	if !cfg.Archetype.IsValid() {
		cfg.Archetype = model.ArchetypeWardrobe
	}
	return cfg.Clamped(), nil
}

// Save writes the config as YAML, creating parent directories as needed.
func Save(path string, cfg model.ModuleConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// LoadOrDefault loads the file when it exists and falls back to the default
// wardrobe config when it does not. Malformed files are still an error; a
// typo'd config should never silently become a default wardrobe.
func LoadOrDefault(path string) (model.ModuleConfig, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return model.DefaultConfig(), nil
	}
	return cfg, err
}
