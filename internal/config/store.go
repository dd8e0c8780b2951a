package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Store persists Settings to a single file.
//
// The format follows the file extension: ".yaml"/".yml" files use YAML,
// everything else uses TOML. A missing file is not an error; Load then
// returns the defaults.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads settings from the backing file, starting from the defaults
// so absent keys keep their built-in values.
func (s *Store) Load() (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("reading settings file %s: %w", s.path, err)
	}

	if s.isYAML() {
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return settings, &ParseError{Path: s.path, Message: err.Error(), Err: err}
		}
		return settings, nil
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return settings, &ParseError{Path: s.path, Message: err.Error(), Err: err}
	}
	return settings, nil
}

// Save writes settings to the backing file, creating parent directories
// as needed.
func (s *Store) Save(settings Settings) error {
	var (
		data []byte
		err  error
	)
	if s.isYAML() {
		data, err = yaml.Marshal(settings)
	} else {
		data, err = toml.Marshal(settings)
	}
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating settings directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings file %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) isYAML() bool {
	ext := strings.ToLower(filepath.Ext(s.path))
	return ext == ".yaml" || ext == ".yml"
}
