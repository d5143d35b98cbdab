package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileNames are the default config file names searched by Load, in order.
var FileNames = []string{"mergefile.yml", "mergefile.yaml"}

// ProjectConfig holds merge defaults loaded from mergefile.yml. Command-line
// flags override every field.
type ProjectConfig struct {
	Header  string `yaml:"header,omitempty"`
	Format  string `yaml:"format,omitempty"`
	Digest  bool   `yaml:"digest,omitempty"`
	Verbose bool   `yaml:"verbose,omitempty"`
}

// Load attempts to read mergefile.yml or mergefile.yaml from the given
// directory. Returns a zero-value config (not an error) if no config file
// exists.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range FileNames {
		cfg, err := LoadFile(filepath.Join(dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return cfg, err
	}
	return &ProjectConfig{}, nil
}

// LoadFile reads an explicit config file. A missing file is an error.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}
