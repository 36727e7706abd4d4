package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/typepreview/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// DefaultPath returns the conventional config location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "typepreview", "config.yaml"), nil
}

// Load reads the config at path. An empty path tries DefaultPath and falls
// back to Default when nothing is there; an explicit path must exist.
func Load(path string) (*Config, error) {
	if path != "" {
		return ParseConfig(path)
	}

	def, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	cfg, err := ParseConfig(def)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// ParseConfig loads a configuration file from disk, validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, apperrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
