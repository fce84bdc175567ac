package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultConfig is the catalog and add-on configuration shipped with the binary.
//
//go:embed defaults.yaml
var defaultConfig []byte

// Default returns the embedded configuration.
func Default() (Config, error) {
	return Parse(defaultConfig)
}

// Load reads the configuration from configFile, or the embedded defaults when
// configFile is empty.
func Load(configFile string) (Config, error) {
	if configFile == "" {
		return Default()
	}

	raw, err := os.ReadFile(configFile)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", configFile, err)
	}

	cfg, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", configFile, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document into a Config. Unknown keys are rejected so
// that a misspelled category does not silently produce an empty list.
func Parse(raw []byte) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.AURHelper.Name == "" {
		errs = append(errs, errors.New("aur_helper.name must be set"))
	}
	if c.AURHelper.Repo == "" {
		errs = append(errs, errors.New("aur_helper.repo must be set"))
	}
	if c.Shell == "" {
		c.Shell = "/usr/bin/fish"
	}
	if c.Services == nil {
		c.Services = Services{}
	}
	return errors.Join(errs...)
}
