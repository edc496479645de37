package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/orderdesk/orderdesk/internal/domain"
)

const fileName = ".orderdesk.yaml"

// YAMLLoader reads .orderdesk.yaml from a directory.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .orderdesk.yaml from dir. Returns DefaultSessionConfig
// when the file does not exist; present keys override defaults.
func (l *YAMLLoader) Load(dir string) (domain.SessionConfig, error) {
	cfg := domain.DefaultSessionConfig()

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return domain.SessionConfig{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.SessionConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return domain.SessionConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return cfg, nil
}
