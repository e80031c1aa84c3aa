package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Loader parses one configuration file format.
type Loader interface {
	// Load unmarshals the file into cfg. It returns false with no
	// error when the file does not exist.
	Load(cfg *Config) (bool, error)
}

// ForPath picks a loader by file extension: .toml, .yaml, or .yml.
func ForPath(path string) (Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return &TOMLLoader{path: path}, nil
	case ".yaml", ".yml":
		return &YAMLLoader{path: path}, nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}
}

// TOMLLoader loads configuration from a TOML file.
type TOMLLoader struct {
	path string
}

// NewTOMLLoader creates a TOML loader for the given path.
func NewTOMLLoader(path string) *TOMLLoader {
	return &TOMLLoader{path: path}
}

// Load implements Loader.
func (l *TOMLLoader) Load(cfg *Config) (bool, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("reading config file %s: %w", l.path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return false, &ParseError{Path: l.path, Err: err}
	}
	return true, nil
}

// YAMLLoader loads configuration from a YAML file.
type YAMLLoader struct {
	path string
}

// NewYAMLLoader creates a YAML loader for the given path.
func NewYAMLLoader(path string) *YAMLLoader {
	return &YAMLLoader{path: path}
}

// Load implements Loader.
func (l *YAMLLoader) Load(cfg *Config) (bool, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("reading config file %s: %w", l.path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return false, &ParseError{Path: l.path, Err: err}
	}
	return true, nil
}

// ParseError reports a malformed configuration file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
