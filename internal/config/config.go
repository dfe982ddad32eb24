package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jrh-151/simplesig/pkg/simplesig"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig is the optional per-directory configuration read from
// simplesig.yaml in the input directory. Command-line flags override
// everything set here.
type ProjectConfig struct {
	// Output is the signature file destination.
	Output string `yaml:"output"`

	// Timestamp embeds the generation time in the output header.
	Timestamp bool `yaml:"timestamp"`
}

// Load reads simplesig.yaml from inputDir. A missing file yields
// ErrConfigNotFound; callers treat that as "no configuration".
func Load(inputDir string) (*ProjectConfig, error) {
	configPath := filepath.Join(inputDir, simplesig.ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}
	return &cfg, nil
}
