// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/attrprops

package attrprops

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultAttributesFile is the attribute rules file name used when
// configuration omits it.
const DefaultAttributesFile = ".gitattributes"

// Config is repository format configuration for attribute translation.
type Config struct {
	// AttributesFile is the attribute rules file name.
	AttributesFile string `toml:"attributes_file" json:"attributes_file" yaml:"attributes_file"`
	// Format is the repository format ordinal selecting the EOL algorithm
	// generation.
	Format int `toml:"format" json:"format" yaml:"format"`
}

// DefaultConfig returns configuration for the current repository format.
func DefaultConfig() Config {
	return Config{
		AttributesFile: DefaultAttributesFile,
		Format:         int(FormatV5),
	}
}

// LoadConfig loads repository format configuration from a TOML file.
//
// A missing file is not an error and yields DefaultConfig, so repositories
// without explicit configuration get current format semantics. Repositories
// created under an older format keep their behavior by pinning "format".
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Format <= 0 {
		return Config{}, fmt.Errorf("%w: format %d", ErrInvalidConfig, cfg.Format)
	}

	if cfg.AttributesFile == "" {
		cfg.AttributesFile = DefaultAttributesFile
	}

	return cfg, nil
}

// Version returns the format version for translate options.
func (c Config) Version() FormatVersion {
	return FormatVersion(c.Format)
}
